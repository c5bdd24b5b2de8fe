package hatsim

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/go-errors/errors"

	e "github.com/STBoyden/hatsim/error"
	h "github.com/STBoyden/hatsim/hashbag"
)

// Optional parameters for NewHat.
type HatParams struct {
	// Seed makes draws reproducible. Zero picks a random seed.
	Seed uint64
	// Rand overrides Seed with a caller-owned generator.
	Rand *rand.Rand
}

// Hat is a multiset of labelled balls supporting destructive random draws.
// It is not safe for concurrent use.
type Hat struct {
	original h.HashBag[string]
	// baseline is original expanded once; it is never modified after
	// construction and may be shared between clones.
	baseline  []string
	work      []string
	contents  []string
	lastDrawn []string
	rng       *rand.Rand
}

// Creates a new Hat holding counts[label] balls of each label. On malformed
// input the returned hat is empty, never partially populated, and the error
// is of kind MalformedCount.
func NewHat(counts map[string]int, params ...HatParams) (*Hat, error) {
	hat := newEmptyHat(params...)

	for label, count := range counts {
		if label == "" {
			return hat, errors.Wrap(e.New(e.MalformedCount, "empty label"), 0)
		}

		if count < 0 {
			return hat, errors.Wrap(e.New(e.MalformedCount, fmt.Sprintf("%s=%d is negative", label, count)), 0)
		}

		if uint64(count) > math.MaxUint32 {
			return hat, errors.Wrap(e.New(e.MalformedCount, fmt.Sprintf("%s=%d is too large", label, count)), 0)
		}
	}

	for label, count := range counts {
		h.InsertN(hat.original, label, uint32(count))
	}

	hat.baseline = h.Expand(hat.original)
	hat.work = make([]string, len(hat.baseline))
	hat.Reset()

	return hat, nil
}

// Creates a new Hat from textual counts such as {"red": "5"}. A count that is
// not an integer fails construction the same way a negative count does.
func NewHatFromStrings(counts map[string]string, params ...HatParams) (*Hat, error) {
	parsed := make(map[string]int, len(counts))

	for label, raw := range counts {
		count, err := strconv.Atoi(strings.TrimSpace(raw))

		if err != nil {
			return newEmptyHat(params...), errors.Wrap(e.New(e.MalformedCount, fmt.Sprintf("%s=%q is not an integer", label, raw)), 0)
		}

		parsed[label] = count
	}

	return NewHat(parsed, params...)
}

func newEmptyHat(params ...HatParams) *Hat {
	hat := &Hat{original: h.New[string](), contents: []string{}}

	if len(params) > 0 && params[0].Rand != nil {
		hat.rng = params[0].Rand
	} else if len(params) > 0 && params[0].Seed != 0 {
		hat.rng = seeded(params[0].Seed)
	} else {
		hat.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return hat
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Draw removes n balls chosen uniformly at random without replacement and
// returns them. Asking for at least as many balls as remain empties the hat.
func (hat *Hat) Draw(n int) ([]string, error) {
	if n < 0 {
		return nil, errors.Wrap(e.New(e.InvalidArgument, fmt.Sprintf("draw count %d is negative", n)), 0)
	}

	hat.draw(n)

	return hat.LastDrawn(), nil
}

// draw is a partial Fisher-Yates shuffle: after i steps contents[:i] is a
// uniform i-combination of the balls, so the first n positions are the draw
// and the suffix is what stays in the hat.
func (hat *Hat) draw(n int) []string {
	if n >= len(hat.contents) {
		hat.lastDrawn = append(hat.lastDrawn[:0], hat.contents...)
		hat.contents = hat.contents[:0]

		return hat.lastDrawn
	}

	for i := 0; i < n; i++ {
		j := i + hat.rng.IntN(len(hat.contents)-i)
		hat.contents[i], hat.contents[j] = hat.contents[j], hat.contents[i]
	}

	hat.lastDrawn = append(hat.lastDrawn[:0], hat.contents[:n]...)
	hat.contents = hat.contents[n:]

	return hat.lastDrawn
}

// Reset puts every ball of the original composition back into the hat.
// The last draw is kept.
func (hat *Hat) Reset() {
	if cap(hat.work) < len(hat.baseline) {
		hat.work = make([]string, len(hat.baseline))
	}

	hat.contents = hat.work[:len(hat.baseline)]
	copy(hat.contents, hat.baseline)
}

// Clone returns an independent hat with the same original composition and
// current contents. Its generator is seeded from this hat's generator.
func (hat *Hat) Clone() *Hat {
	clone := &Hat{
		original:  hat.original,
		baseline:  hat.baseline,
		work:      make([]string, len(hat.baseline)),
		lastDrawn: append([]string(nil), hat.lastDrawn...),
		rng:       seeded(hat.rng.Uint64()),
	}

	clone.contents = clone.work[:len(hat.contents)]
	copy(clone.contents, hat.contents)

	return clone
}

// Number of balls currently in the hat.
func (hat *Hat) Size() int {
	return len(hat.contents)
}

func (hat *Hat) Contents() []string {
	return append([]string{}, hat.contents...)
}

func (hat *Hat) LastDrawn() []string {
	return append([]string{}, hat.lastDrawn...)
}

// Current number of balls per label.
func (hat *Hat) Counts() map[string]int {
	return toCounts(h.FromSlice(hat.contents))
}

// Number of balls per label the hat was created with.
func (hat *Hat) Original() map[string]int {
	return toCounts(hat.original)
}

func (hat *Hat) String() string {
	return fmt.Sprintf("Hat(contents=%v)", hat.contents)
}

func toCounts(bag h.HashBag[string]) map[string]int {
	counts := make(map[string]int, len(bag))

	for label := range bag {
		counts[label] = int(h.Count(bag, label))
	}

	return counts
}
