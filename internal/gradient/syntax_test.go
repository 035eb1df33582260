package gradient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/grady/internal/models"
)

var redBlue = []models.Stop{
	{Percent: 0, Color: "#FF0000"},
	{Percent: 100, Color: "#0000FF"},
}

func TestBuildSyntaxDefaults(t *testing.T) {
	assert.Equal(t, "linear-gradient(#FF0000 0%, #0000FF 100%)",
		BuildSyntax(redBlue, Config{Kind: Linear}))
	assert.Equal(t, "radial-gradient(#FF0000 0%, #0000FF 100%)",
		BuildSyntax(redBlue, Config{Kind: Radial}))
}

func TestBuildSyntaxRepeatModes(t *testing.T) {
	tests := []struct {
		mode RepeatMode
		want string
	}{
		{RepeatNone, "linear-gradient(#FF0000 0%, #0000FF 100%)"},
		{Repeat, "linear-gradient(repeat, #FF0000 0%, #0000FF 100%)"},
		{Reflect, "linear-gradient(reflect, #FF0000 0%, #0000FF 100%)"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, BuildSyntax(redBlue, Config{Kind: Linear, Repeat: tt.mode}))
		})
	}
}

func TestBuildSyntaxShapeClauses(t *testing.T) {
	lp := LinearParams{From: Point{0, 0}, To: Point{100, 100}}
	assert.Equal(t,
		"linear-gradient(from 0% 0% to 100% 100%, reflect, #FF0000 0%, #0000FF 100%)",
		BuildSyntax(redBlue, Config{Kind: Linear, Repeat: Reflect, Linear: &lp}))

	rp := RadialParams{FocusAngle: 45, FocusDistance: 20, Center: Point{50, 50}, Radius: 12.5}
	assert.Equal(t,
		"radial-gradient(focus-angle 45deg, focus-distance 20%, center 50% 50%, radius 12.5%, repeat, #FF0000 0%, #0000FF 100%)",
		BuildSyntax(redBlue, Config{Kind: Radial, Repeat: Repeat, Radial: &rp}))

	// clauses of the other kind are ignored
	assert.Equal(t, "radial-gradient(#FF0000 0%, #0000FF 100%)",
		BuildSyntax(redBlue, Config{Kind: Radial, Linear: &lp}))
}

func TestBuildSyntaxKeepsListOrder(t *testing.T) {
	stops := []models.Stop{
		{Percent: 80, Color: "#111111"},
		{Percent: 10, Color: "rgba(0, 0, 0, 0.5)"},
		{Percent: 50, Color: "#333333"},
		{Percent: 0, Color: "#444444"},
	}
	out := BuildSyntax(stops, Config{Kind: Linear, Repeat: Repeat})

	inner := strings.TrimSuffix(strings.TrimPrefix(out, "linear-gradient(repeat, "), ")")
	entries, err := SplitTopLevel(inner)
	require.NoError(t, err)
	require.Len(t, entries, len(stops))
	for i, s := range stops {
		assert.Equal(t, s.String(), entries[i])
	}
}

func TestBuildSyntaxIdempotent(t *testing.T) {
	cfg := Config{Kind: Radial, Repeat: Reflect}
	assert.Equal(t, BuildSyntax(redBlue, cfg), BuildSyntax(redBlue, cfg))
}

func TestParseKindAndRepeatMode(t *testing.T) {
	k, err := ParseKind("RADIAL")
	require.NoError(t, err)
	assert.Equal(t, Radial, k)

	_, err = ParseKind("conic")
	assert.Error(t, err)

	m, err := ParseRepeatMode("reflect")
	require.NoError(t, err)
	assert.Equal(t, Reflect, m)

	_, err = ParseRepeatMode("mirror")
	assert.Error(t, err)

	assert.Equal(t, Repeat, RepeatNone.Next())
	assert.Equal(t, Reflect, Repeat.Next())
	assert.Equal(t, RepeatNone, Reflect.Next())
}
