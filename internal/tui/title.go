package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/balkashynov/grady/internal/preview"
)

// supportsTrueColor detects if terminal supports truecolor
func supportsTrueColor() bool {
	colorTerm := os.Getenv("COLORTERM")
	return colorTerm == "truecolor" || colorTerm == "24bit"
}

// renderGradientText colors each glyph of text by sampling the current gradient
// along its length. Without truecolor, or without a usable gradient, the text
// gets the static accent color.
func renderGradientText(text string, sampler *preview.Sampler, trueColor bool) string {
	glyphs := []rune(text)
	if len(glyphs) == 0 {
		return ""
	}
	if sampler == nil || !trueColor {
		return renderStaticText(text)
	}

	var b strings.Builder
	for i, char := range glyphs {
		t := 0.0
		if len(glyphs) > 1 {
			t = float64(i) / float64(len(glyphs)-1)
		}
		r, g, bl := sampler.ColorAt(t).Clamped().RGB255()
		b.WriteString(fmt.Sprintf("\033[38;2;%d;%d;%dm%c", r, g, bl, char))
	}

	// Reset color
	b.WriteString("\033[0m")

	return b.String()
}

// renderStaticText renders text in the accent color
func renderStaticText(text string) string {
	return fmt.Sprintf("\033[38;2;167;139;250m%s\033[0m", text) // ColorAccentBright
}
