package hatsim

import (
	"fmt"

	"github.com/go-errors/errors"
	"go.uber.org/zap"

	e "github.com/STBoyden/hatsim/error"
	h "github.com/STBoyden/hatsim/hashbag"
	"github.com/STBoyden/hatsim/result"
)

// Optional parameters for RunExperiment and Run.
type ExperimentParams struct {
	// Logger receives coercion warnings and a per-run summary. Defaults to a
	// no-op logger.
	Logger *zap.Logger
	// Seed makes the run reproducible regardless of the hat's own generator.
	Seed uint64
	// WithExact adds the exact hypergeometric probability to the report.
	WithExact bool
}

func (p ExperimentParams) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}

	return p.Logger
}

func firstExperimentParams(params []ExperimentParams) ExperimentParams {
	if len(params) > 0 {
		return params[0]
	}

	return ExperimentParams{}
}

// RunExperiment estimates the probability that drawing drawCount balls from
// hat yields at least requirement[label] balls of every listed label. Each of
// the trialCount trials starts from the hat's original composition; hat itself
// is never drawn from. Zero trials give 0.
func RunExperiment(hat *Hat, requirement map[string]int, drawCount int, trialCount int, params ...ExperimentParams) (float64, error) {
	report, err := Run(hat, requirement, drawCount, trialCount, params...)

	if err != nil {
		return 0, err
	}

	return report.Probability, nil
}

// Run is RunExperiment returning the full report.
func Run(hat *Hat, requirement map[string]int, drawCount int, trialCount int, params ...ExperimentParams) (result.Report, error) {
	p := firstExperimentParams(params)
	logger := p.logger()

	if hat == nil {
		return result.Report{}, errors.Wrap(e.New(e.InvalidArgument, "hat is nil"), 0)
	}

	if drawCount < 0 {
		return result.Report{}, errors.Wrap(e.New(e.InvalidArgument, fmt.Sprintf("draw count %d is negative", drawCount)), 0)
	}

	if trialCount < 0 {
		return result.Report{}, errors.Wrap(e.New(e.InvalidArgument, fmt.Sprintf("trial count %d is negative", trialCount)), 0)
	}

	expected := normalizeRequirement(requirement, logger)

	if trialCount == 0 {
		logger.Debug("no trials requested")

		return result.New(0, 0, drawCount), nil
	}

	working := hat.Clone()

	if p.Seed != 0 {
		working.rng = seeded(p.Seed)
	}

	successes := 0
	totals := h.New[string]()

	for i := 0; i < trialCount; i++ {
		working.Reset()
		tally := h.FromSlice(working.draw(drawCount))

		if h.Covers(tally, expected) {
			successes++
		}

		for label, count := range tally {
			h.InsertN(totals, label, count)
		}
	}

	report := result.New(trialCount, successes, drawCount)
	report.SetTotals(totals)

	if p.WithExact {
		exact, err := ExactProbability(hat.Original(), expected, drawCount)

		if err != nil {
			return result.Report{}, errors.Wrap(err, 0)
		}

		report.SetExact(exact)
	}

	logger.Debug("experiment finished",
		zap.Int("trials", trialCount),
		zap.Int("successes", successes),
		zap.Int("draw_count", drawCount),
		zap.Float64("probability", report.Probability))

	return report, nil
}

// normalizeRequirement copies requirement, replacing negative minimums with 0.
func normalizeRequirement(requirement map[string]int, logger *zap.Logger) map[string]int {
	expected := make(map[string]int, len(requirement))

	for label, needed := range requirement {
		if needed < 0 {
			logger.Warn("negative requirement, using 0",
				zap.String("label", label),
				zap.Int("value", needed))

			needed = 0
		}

		expected[label] = needed
	}

	return expected
}
