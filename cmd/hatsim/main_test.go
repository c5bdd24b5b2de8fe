package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	e "github.com/STBoyden/hatsim/error"
	"github.com/STBoyden/hatsim/result"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRunText(t *testing.T) {
	out, _, err := execute(t, "run", "--hat", "red=5,blue=3", "--expect", "red=2", "--draw", "3", "--trials", "1000", "--seed", "9", "--exact")
	require.NoError(t, err)

	assert.Contains(t, out, "Probability: ")
	assert.Contains(t, out, "/1000 trials")
	assert.Contains(t, out, "Exact:       0.7143")
	assert.Contains(t, out, "mean blue")
	assert.Contains(t, out, "mean red")
}

func TestRunJSON(t *testing.T) {
	out, _, err := execute(t, "run", "--hat", "red=5,blue=3", "--expect", "red=2", "--draw", "3", "--trials", "4000", "--seed", "9", "--exact", "-o", "json")
	require.NoError(t, err)

	var report result.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, 4000, report.Trials)
	assert.Equal(t, 3, report.DrawCount)
	require.NotNil(t, report.Exact)
	assert.InDelta(t, *report.Exact, report.Probability, 0.03)
}

func TestRunYAML(t *testing.T) {
	out, _, err := execute(t, "run", "--hat", "red=1", "--expect", "red=1,blue=1", "--trials", "100", "-o", "yaml")
	require.NoError(t, err)

	var report result.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))

	assert.Equal(t, 100, report.Trials)
	assert.Equal(t, 0.0, report.Probability)
}

func TestRunIsReproducible(t *testing.T) {
	args := []string{"run", "--hat", "red=4,blue=4,green=2", "--expect", "green=1", "--draw", "3", "--trials", "500", "--seed", "21", "-o", "json"}

	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunFallsBackOnMalformedNumbers(t *testing.T) {
	out, stderr, err := execute(t, "run", "--hat", "red=5,blue=3", "--expect", "red=two", "--draw", "three", "-o", "json")
	require.NoError(t, err)

	var report result.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, 0, report.Trials)
	assert.Equal(t, 0.0, report.Probability)
	assert.Contains(t, stderr, "requirement is not an integer")
	assert.Contains(t, stderr, "draw or trial count is not an integer")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing hat", []string{"run"}},
		{"malformed hat", []string{"run", "--hat", "red=many"}},
		{"negative hat count", []string{"run", "--hat", "red=-1"}},
		{"negative draw", []string{"run", "--hat", "red=1", "--draw", "-2"}},
		{"bad output", []string{"run", "--hat", "red=1", "-o", "xml"}},
		{"bad log level", []string{"run", "--hat", "red=1", "--log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRunReadsEnvironment(t *testing.T) {
	t.Setenv("HATSIM_TRIALS", "50")
	t.Setenv("HATSIM_HAT", "red=2,blue=2")

	out, _, err := execute(t, "run", "-o", "json")
	require.NoError(t, err)

	var report result.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 50, report.Trials)
	assert.Equal(t, 1, report.DrawCount)
}

func TestExact(t *testing.T) {
	out, _, err := execute(t, "exact", "--hat", "blue=3,red=2,green=6", "--expect", "blue=2,green=1", "--draw", "4")
	require.NoError(t, err)
	assert.Equal(t, "Exact probability: 0.2636\n", out)

	out, _, err = execute(t, "exact", "--hat", "red=5,blue=3", "--expect", "red=2", "--draw", "3", "-o", "json")
	require.NoError(t, err)

	var decoded exactOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 3, decoded.DrawCount)
	assert.InDelta(t, 40.0/56.0, decoded.Probability, 1e-9)

	_, _, err = execute(t, "exact", "--hat", "red=5", "--expect", "red=x", "--draw", "1")
	assert.Error(t, err)

	_, _, err = execute(t, "exact", "--hat", "red=5", "--expect", "red=-1", "--draw", "1")
	assert.True(t, e.IsType(err, e.MalformedRequirement))

	_, _, err = execute(t, "exact", "--hat", "red=5", "--draw", "one")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hatsim "+Version)
}
