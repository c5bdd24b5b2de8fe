package hatsim

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-errors/errors"

	e "github.com/STBoyden/hatsim/error"
)

// ExactProbability is the multivariate hypergeometric probability that
// drawing drawCount balls from a hat with the given counts yields at least
// requirement[label] balls of every required label. It answers the same
// question RunExperiment estimates.
func ExactProbability(counts map[string]int, requirement map[string]int, drawCount int) (float64, error) {
	if drawCount < 0 {
		return 0, errors.Wrap(e.New(e.InvalidArgument, fmt.Sprintf("draw count %d is negative", drawCount)), 0)
	}

	total := 0

	for label, count := range counts {
		if count < 0 {
			return 0, errors.Wrap(e.New(e.MalformedCount, fmt.Sprintf("%s=%d is negative", label, count)), 0)
		}

		total += count
	}

	labels := make([]string, 0, len(requirement))

	for label, needed := range requirement {
		if needed <= 0 {
			continue
		}

		if counts[label] < needed {
			return 0, nil
		}

		labels = append(labels, label)
	}

	sort.Strings(labels)

	if drawCount >= total {
		// everything is drawn and every required label is present in full
		return 1, nil
	}

	others := total

	for _, label := range labels {
		others -= counts[label]
	}

	denominator := logChoose(total, drawCount)
	probability := 0.0

	var walk func(i int, remaining int, logWays float64)

	walk = func(i int, remaining int, logWays float64) {
		if i == len(labels) {
			if remaining <= others {
				probability += math.Exp(logWays + logChoose(others, remaining) - denominator)
			}

			return
		}

		available := counts[labels[i]]

		for k := requirement[labels[i]]; k <= available && k <= remaining; k++ {
			walk(i+1, remaining-k, logWays+logChoose(available, k))
		}
	}

	walk(0, drawCount, 0)

	return math.Min(1, math.Max(0, probability)), nil
}

func logChoose(n int, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}

	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(k + 1))
	c, _ := math.Lgamma(float64(n - k + 1))

	return a - b - c
}
