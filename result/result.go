package result

import (
	"math"
	"sort"

	h "github.com/STBoyden/hatsim/hashbag"
)

// Report summarises one experiment run.
type Report struct {
	Trials      int                `json:"trials" yaml:"trials"`
	Successes   int                `json:"successes" yaml:"successes"`
	DrawCount   int                `json:"draw_count" yaml:"draw_count"`
	Probability float64            `json:"probability" yaml:"probability"`
	MeanDrawn   map[string]float64 `json:"mean_drawn,omitempty" yaml:"mean_drawn,omitempty"`
	Exact       *float64           `json:"exact,omitempty" yaml:"exact,omitempty"`
}

// Creates a new Report. Zero trials yield a probability of 0.
func New(trials int, successes int, drawCount int) Report {
	report := Report{Trials: trials, Successes: successes, DrawCount: drawCount}

	if trials > 0 {
		report.Probability = float64(successes) / float64(trials)
	}

	return report
}

// Records the per-label totals drawn over all trials as per-trial means.
func (r *Report) SetTotals(totals h.HashBag[string]) {
	if r.Trials == 0 || len(totals) == 0 {
		r.MeanDrawn = nil
		return
	}

	r.MeanDrawn = make(map[string]float64, len(totals))

	for label, count := range totals {
		r.MeanDrawn[label] = float64(count) / float64(r.Trials)
	}
}

func (r *Report) SetExact(p float64) {
	r.Exact = &p
}

// Binomial standard error of the estimated probability.
func (r Report) StandardError() float64 {
	if r.Trials == 0 {
		return 0
	}

	return math.Sqrt(r.Probability * (1 - r.Probability) / float64(r.Trials))
}

// Labels of MeanDrawn in ascending order.
func (r Report) Labels() []string {
	labels := make([]string, 0, len(r.MeanDrawn))

	for label := range r.MeanDrawn {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	return labels
}
