package hatsim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
	"go.uber.org/zap"

	e "github.com/STBoyden/hatsim/error"
)

// ParsePairs splits text of the form "red=5,blue=3" into label/value pairs.
// Values are returned unparsed. Empty text yields an empty map.
func ParsePairs(text string) (map[string]string, error) {
	pairs := map[string]string{}

	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)

		if field == "" {
			continue
		}

		label, value, found := strings.Cut(field, "=")
		label = strings.TrimSpace(label)

		if !found || label == "" {
			return nil, errors.Wrap(e.New(e.InvalidArgument, fmt.Sprintf("%q is not of the form label=count", field)), 0)
		}

		if _, duplicate := pairs[label]; duplicate {
			return nil, errors.Wrap(e.New(e.InvalidArgument, fmt.Sprintf("label %q given more than once", label)), 0)
		}

		pairs[label] = strings.TrimSpace(value)
	}

	return pairs, nil
}

// ParseCounts is ParsePairs with every value required to be an integer.
func ParseCounts(text string) (map[string]int, error) {
	pairs, err := ParsePairs(text)

	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(pairs))

	for label, raw := range pairs {
		count, err := strconv.Atoi(raw)

		if err != nil {
			return nil, errors.Wrap(e.New(e.MalformedCount, fmt.Sprintf("%s=%q is not an integer", label, raw)), 0)
		}

		counts[label] = count
	}

	return counts, nil
}

// ParseRequirement is ParsePairs for minimum counts that must be
// non-negative integers. It is the strict counterpart of CoerceExperimentArgs.
func ParseRequirement(text string) (map[string]int, error) {
	pairs, err := ParsePairs(text)

	if err != nil {
		return nil, err
	}

	requirement := make(map[string]int, len(pairs))

	for label, raw := range pairs {
		needed, err := strconv.Atoi(raw)

		if err != nil {
			return nil, errors.Wrap(e.New(e.MalformedRequirement, fmt.Sprintf("%s=%q is not an integer", label, raw)), 0)
		}

		if needed < 0 {
			return nil, errors.Wrap(e.New(e.MalformedRequirement, fmt.Sprintf("%s=%d is negative", label, needed)), 0)
		}

		requirement[label] = needed
	}

	return requirement, nil
}

// CoerceExperimentArgs converts loosely typed experiment arguments, falling
// back instead of failing:
//   - a requirement value that is not an integer becomes 0;
//   - if either drawCount or trialCount is not an integer, both become 0,
//     which makes the experiment report 0.
//
// Every fallback is logged at warn level. Negative integers are passed
// through for RunExperiment to reject.
func CoerceExperimentArgs(requirement map[string]string, drawCount string, trialCount string, logger *zap.Logger) (map[string]int, int, int) {
	if logger == nil {
		logger = zap.NewNop()
	}

	expected := make(map[string]int, len(requirement))

	for label, raw := range requirement {
		needed, err := strconv.Atoi(strings.TrimSpace(raw))

		if err != nil {
			logger.Warn("requirement is not an integer, using 0",
				zap.String("label", label),
				zap.String("value", raw))

			needed = 0
		}

		expected[label] = needed
	}

	draws, drawErr := strconv.Atoi(strings.TrimSpace(drawCount))
	trials, trialErr := strconv.Atoi(strings.TrimSpace(trialCount))

	if drawErr != nil || trialErr != nil {
		logger.Warn("draw or trial count is not an integer, running no trials",
			zap.String("draw_count", drawCount),
			zap.String("trial_count", trialCount))

		return expected, 0, 0
	}

	return expected, draws, trials
}

// RunExperimentFromStrings is RunExperiment over textual arguments, applying
// the fallbacks of CoerceExperimentArgs first.
func RunExperimentFromStrings(hat *Hat, requirement map[string]string, drawCount string, trialCount string, params ...ExperimentParams) (float64, error) {
	p := firstExperimentParams(params)
	expected, draws, trials := CoerceExperimentArgs(requirement, drawCount, trialCount, p.logger())

	return RunExperiment(hat, expected, draws, trials, p)
}
