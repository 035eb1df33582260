package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/grady/internal/gradient"
	"github.com/balkashynov/grady/internal/models"
)

func TestParseStop(t *testing.T) {
	tests := []struct {
		in   string
		want models.Stop
	}{
		{"#FF0000 25%", models.Stop{Percent: 25, Color: "#FF0000"}},
		{"#ff0000 25", models.Stop{Percent: 25, Color: "#FF0000"}},
		{"red:40", models.Stop{Percent: 40, Color: "red"}},
		{"  rgba(0, 0, 0, 0.5) 100%  ", models.Stop{Percent: 100, Color: "rgba(0, 0, 0, 0.5)"}},
		{"#00F 12.5%", models.Stop{Percent: 12.5, Color: "#00F"}},
		{"blue -5", models.Stop{Percent: 0, Color: "blue"}},
		{"blue 150%", models.Stop{Percent: 100, Color: "blue"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStop(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStopErrors(t *testing.T) {
	for _, in := range []string{"", "#FF0000", "50%", "red fifty", "red, blue 40", "rgba(0, 0, 0 50%"} {
		_, err := ParseStop(in)
		assert.ErrorIs(t, err, ErrInvalidStop, "input %q", in)
	}
}

func TestParseStops(t *testing.T) {
	stops, err := ParseStops([]string{"#FF0000 0", "#0000FF 100"})
	require.NoError(t, err)
	assert.Equal(t, gradient.DefaultStops(), stops)

	_, err = ParseStops([]string{"#FF0000 0", "oops"})
	assert.ErrorIs(t, err, ErrInvalidStop)
}

func TestParsePercent(t *testing.T) {
	for in, want := range map[string]float64{"25": 25, "25%": 25, " 12.5 % ": 12.5, "-3": -3} {
		got, err := ParsePercent(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "abc", "NaN", "Inf"} {
		_, err := ParsePercent(in)
		assert.Error(t, err, in)
	}
}

func TestParsePoint(t *testing.T) {
	for _, in := range []string{"50 25", "50% 25%", "50,25", "50%, 25%"} {
		p, err := ParsePoint(in)
		require.NoError(t, err, in)
		assert.Equal(t, gradient.Point{X: 50, Y: 25}, p, in)
	}
	_, err := ParsePoint("50")
	assert.Error(t, err)
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "#FFAA00", NormalizeColor(" #ffaa00 "))
	assert.Equal(t, "#ABC", NormalizeColor("#abc"))
	assert.Equal(t, "rgba(1,2,3,0.5)", NormalizeColor("rgba(1,2,3,0.5)"))
	assert.Equal(t, "#ggg", NormalizeColor("#ggg"))
}

func TestCheckColor(t *testing.T) {
	for _, ok := range []string{"#FF0000", "red", "rgba(0, 0, 255, 0.5)", " rgb(1,2,3) "} {
		assert.NoError(t, CheckColor(ok), ok)
	}
	for _, bad := range []string{"", "   ", "red, blue", "red,", "rgba(0, 0, 255", "rgb(1,2,3)), x"} {
		assert.Error(t, CheckColor(bad), bad)
	}
}
