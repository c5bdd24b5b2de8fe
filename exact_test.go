package hatsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/STBoyden/hatsim"
	e "github.com/STBoyden/hatsim/error"
)

func TestExactProbability(t *testing.T) {
	tests := []struct {
		name        string
		counts      map[string]int
		requirement map[string]int
		drawCount   int
		want        float64
	}{
		// P(red >= 2) = (C(5,2)*C(3,1) + C(5,3)) / C(8,3) = 40/56; 30/56 is P(red == 2) only
		{"at least two red of three", map[string]int{"red": 5, "blue": 3}, map[string]int{"red": 2}, 3, 40.0 / 56.0},
		{"two labels", map[string]int{"blue": 3, "red": 2, "green": 6}, map[string]int{"blue": 2, "green": 1}, 4, 87.0 / 330.0},
		{"empty requirement", map[string]int{"red": 5, "blue": 3}, nil, 3, 1},
		{"zero requirement", map[string]int{"red": 5}, map[string]int{"red": 0, "blue": 0}, 2, 1},
		{"label not in hat", map[string]int{"red": 1}, map[string]int{"red": 1, "blue": 1}, 1, 0},
		{"more required than drawn", map[string]int{"red": 5, "blue": 3}, map[string]int{"red": 4}, 3, 0},
		{"draw everything satisfied", map[string]int{"red": 2, "blue": 1}, map[string]int{"red": 2}, 5, 1},
		{"draw nothing", map[string]int{"red": 2, "blue": 1}, map[string]int{"red": 1}, 0, 0},
		{"single ball", map[string]int{"red": 1, "blue": 3}, map[string]int{"red": 1}, 1, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hatsim.ExactProbability(tt.counts, tt.requirement, tt.drawCount)

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestExactProbabilityRejectsMalformedInput(t *testing.T) {
	_, err := hatsim.ExactProbability(map[string]int{"red": 1}, nil, -1)
	assert.True(t, e.IsType(err, e.InvalidArgument))

	_, err = hatsim.ExactProbability(map[string]int{"red": -1}, nil, 1)
	assert.True(t, e.IsType(err, e.MalformedCount))
}
