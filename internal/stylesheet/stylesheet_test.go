package stylesheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/grady/internal/gradient"
)

const redBlue = "linear-gradient(repeat, #FF0000 0%, rgba(0, 0, 255, 0.5) 100%)"

func squash(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func TestRule(t *testing.T) {
	rule, err := Rule(redBlue)
	require.NoError(t, err)

	assert.Equal(t, DefaultSelectors, rule.Selectors)
	require.Len(t, rule.Declarations, 1)
	assert.Equal(t, BackgroundProperty, rule.Declarations[0].Property)
	assert.Equal(t, redBlue, rule.Declarations[0].Value)
}

func TestRuleRejectsBadGradient(t *testing.T) {
	_, err := Rule("blue")
	assert.ErrorIs(t, err, gradient.ErrInvalidSyntax)

	_, err = Render("linear-gradient(red 0%)")
	assert.ErrorIs(t, err, gradient.ErrInvalidSyntax)
}

func TestRenderReadsBack(t *testing.T) {
	text, err := Render(redBlue, ".swatch")
	require.NoError(t, err)
	assert.Contains(t, text, ".swatch")
	assert.Contains(t, text, BackgroundProperty)

	got, err := Backgrounds(text)
	require.NoError(t, err)
	require.Contains(t, got, ".swatch")
	assert.Equal(t, squash(redBlue), squash(got[".swatch"]))

	d, err := gradient.ParseSyntax(got[".swatch"])
	require.NoError(t, err)
	assert.Len(t, d.Stops, 2)
	assert.Equal(t, gradient.Repeat, d.Repeat)
}

func TestBackgroundsSkipsOtherProperties(t *testing.T) {
	got, err := Backgrounds(`
.a { color: red; }
.b, .c { background: radial-gradient(white 0%, black 100%); }
`)
	require.NoError(t, err)
	assert.NotContains(t, got, ".a")
	assert.Contains(t, got, ".b")
	assert.Contains(t, got, ".c")
}

func TestRewrite(t *testing.T) {
	src := `
.a { color: red; }
.b { background: linear-gradient(REPEAT, #ff0000, #0000ff); }
.c { -fx-background-color: radial-gradient(center 50% 50%, radius 40%, white 0%, black 100%); }
.d { background: blue; }
`
	out, err := Rewrite(src)
	require.NoError(t, err)

	got, err := Backgrounds(out)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, squash("linear-gradient(repeat, #ff0000 0%, #0000ff 100%)"), squash(got[".b"]))
	assert.Equal(t,
		squash("radial-gradient(focus-angle 0deg, focus-distance 0%, center 50% 50%, radius 40%, white 0%, black 100%)"),
		squash(got[".c"]))
	assert.Less(t, strings.Index(out, ".b"), strings.Index(out, ".c"))

	out, err = Rewrite(src, ".c")
	require.NoError(t, err)
	assert.NotContains(t, out, ".b")

	_, err = Rewrite(".a { color: red; }")
	assert.Error(t, err)
}
