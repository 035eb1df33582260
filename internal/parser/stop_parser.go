package parser

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/balkashynov/grady/internal/gradient"
	"github.com/balkashynov/grady/internal/models"
)

// ErrInvalidStop is returned for stop specs that can't be read
var ErrInvalidStop = errors.New("invalid color stop")

var (
	// "<color> <percent>[%]" or "<color>:<percent>[%]"; color may contain spaces inside rgba(...)
	stopRegex  = regexp.MustCompile(`^(.*\S)(?:\s+|:)(-?\d+(?:\.\d+)?)%?$`)
	pointRegex = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)%?(?:\s*[,\s]\s*)(-?\d+(?:\.\d+)?)%?$`)
	hexRegex   = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

// ParseStop reads a stop written on the command line.
// Accepts formats like:
// - "#FF0000 25%", "#FF0000 25"
// - "red:40"
// - "rgba(0, 0, 0, 0.5) 100%"
// The percent is clamped to [0,100]; the color is kept as typed apart from hex case.
func ParseStop(input string) (models.Stop, error) {
	input = strings.TrimSpace(input)
	m := stopRegex.FindStringSubmatch(input)
	if m == nil {
		return models.Stop{}, fmt.Errorf("%w %q. Use: \"<color> <percent>%%\", e.g. \"#FF0000 25%%\"", ErrInvalidStop, input)
	}
	p, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return models.Stop{}, fmt.Errorf("%w %q: bad percent", ErrInvalidStop, input)
	}
	color := NormalizeColor(m[1])
	if err := CheckColor(color); err != nil {
		return models.Stop{}, fmt.Errorf("%w %q: %v", ErrInvalidStop, input, err)
	}
	return models.Stop{Percent: models.ClampPercent(p), Color: color}, nil
}

// ParseStops reads every stop, stopping at the first bad one
func ParseStops(inputs []string) ([]models.Stop, error) {
	stops := make([]models.Stop, 0, len(inputs))
	for _, in := range inputs {
		s, err := ParseStop(in)
		if err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}
	return stops, nil
}

// ParsePercent reads "25", "25%" or " 12.5 % "
func ParsePercent(input string) (float64, error) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(input), "%"))
	p, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("invalid percent %q. Use a number between 0 and 100", input)
	}
	return p, nil
}

// ParsePoint reads "X Y" or "X,Y", each optionally with %
func ParsePoint(input string) (gradient.Point, error) {
	m := pointRegex.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return gradient.Point{}, fmt.Errorf("invalid point %q. Use: \"X Y\" in percent, e.g. \"50 50\"", input)
	}
	x, _ := strconv.ParseFloat(m[1], 64)
	y, _ := strconv.ParseFloat(m[2], 64)
	return gradient.Point{X: x, Y: y}, nil
}

// NormalizeColor trims the color and uppercases hex notation ("#ff00aa" -> "#FF00AA").
// Anything else is returned trimmed but otherwise as typed.
func NormalizeColor(color string) string {
	color = strings.TrimSpace(color)
	if hexRegex.MatchString(color) {
		return strings.ToUpper(color)
	}
	return color
}

// CheckColor rejects color text that would not stay a single stop entry in the
// generated gradient: empty text, unbalanced parentheses, or a comma outside
// parentheses ("red, blue"). Commas inside rgba(...) are fine.
func CheckColor(color string) error {
	color = strings.TrimSpace(color)
	if color == "" {
		return errors.New("color can't be empty")
	}
	parts, err := gradient.SplitTopLevel(color)
	if err != nil {
		return fmt.Errorf("invalid color %q: unbalanced parentheses", color)
	}
	if len(parts) > 1 {
		return fmt.Errorf("invalid color %q: one color per stop, commas only inside rgb()/rgba()", color)
	}
	return nil
}
