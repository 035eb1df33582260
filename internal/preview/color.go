package preview

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnsupportedColor is returned for color strings the preview cannot paint
var ErrUnsupportedColor = errors.New("unsupported color")

// ParseColor reads #rgb, #rrggbb, #rrggbbaa, rgb(), rgba() and the SVG/CSS color names.
// The returned alpha is in [0,1].
func ParseColor(s string) (colorful.Color, float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return colorful.Color{}, 0, nil
	}
	if named, ok := colornames.Map[s]; ok {
		c, _ := colorful.MakeColor(named)
		return c, 1, nil
	}

	switch {
	case strings.HasPrefix(s, "#") && len(s) == 9:
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrUnsupportedColor, s)
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrUnsupportedColor, s)
		}
		return c, float64(a) / 255, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrUnsupportedColor, s)
		}
		return c, 1, nil
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseRGBFunc(s)
	}
	return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrUnsupportedColor, s)
}

// parseRGBFunc reads rgb(r, g, b) and rgba(r, g, b, a); channels may be 0-255 or percentages
func parseRGBFunc(s string) (colorful.Color, float64, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrUnsupportedColor, s)
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrUnsupportedColor, s)
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		arg := strings.TrimSpace(args[i])
		scale := 255.0
		if strings.HasSuffix(arg, "%") {
			arg = strings.TrimSuffix(arg, "%")
			scale = 100
		}
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrUnsupportedColor, s)
		}
		ch[i] = clamp01(v / scale)
	}

	alpha := 1.0
	if len(args) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("%w: %q", ErrUnsupportedColor, s)
		}
		alpha = clamp01(v)
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, alpha, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
