package gradient

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/balkashynov/grady/internal/models"
)

// Descriptor is a gradient string read back into its parts
type Descriptor struct {
	Config
	Stops []models.Stop
}

// String rebuilds the gradient string
func (d Descriptor) String() string {
	return BuildSyntax(d.Stops, d.Config)
}

// LinearOrDefault returns the linear clause, falling back to top-to-bottom
func (d Descriptor) LinearOrDefault() LinearParams {
	if d.Linear != nil {
		return *d.Linear
	}
	return DefaultLinearParams()
}

// RadialOrDefault returns the radial clauses, falling back to a centered gradient
func (d Descriptor) RadialOrDefault() RadialParams {
	if d.Radial != nil {
		return *d.Radial
	}
	return DefaultRadialParams()
}

// ParseSyntax reads a string in the form written by BuildSyntax.
// Stops without a percent are spread evenly between their neighbours,
// the first defaulting to 0% and the last to 100%.
func ParseSyntax(input string) (Descriptor, error) {
	var d Descriptor

	s := strings.TrimSpace(input)
	s = strings.TrimSuffix(s, ";")
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "linear-gradient("):
		d.Kind = Linear
		s = s[len("linear-gradient("):]
	case strings.HasPrefix(lower, "radial-gradient("):
		d.Kind = Radial
		s = s[len("radial-gradient("):]
	default:
		return d, fmt.Errorf("%w: expected linear-gradient(...) or radial-gradient(...)", ErrInvalidSyntax)
	}
	if !strings.HasSuffix(s, ")") {
		return d, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidSyntax)
	}
	s = s[:len(s)-1]

	parts, err := SplitTopLevel(s)
	if err != nil {
		return d, err
	}

	var (
		stops []models.Stop
		known []bool
	)
	for _, part := range parts {
		if part == "" {
			return d, fmt.Errorf("%w: empty entry", ErrInvalidSyntax)
		}
		fields := strings.Fields(strings.ToLower(part))
		switch {
		case fields[0] == "repeat" && len(fields) == 1:
			d.Repeat = Repeat
		case fields[0] == "reflect" && len(fields) == 1:
			d.Repeat = Reflect
		case fields[0] == "from":
			lp, err := parseFromTo(fields)
			if err != nil {
				return d, err
			}
			d.Linear = &lp
		case fields[0] == "focus-angle" || fields[0] == "focus-distance" || fields[0] == "center" || fields[0] == "radius":
			if d.Radial == nil {
				rp := DefaultRadialParams()
				d.Radial = &rp
			}
			if err := parseRadialClause(d.Radial, fields); err != nil {
				return d, err
			}
		default:
			stop, ok, err := parseStop(part)
			if err != nil {
				return d, err
			}
			stops = append(stops, stop)
			known = append(known, ok)
		}
	}

	if len(stops) < MinStops {
		return d, fmt.Errorf("%w: need at least %d color stops, got %d", ErrInvalidSyntax, MinStops, len(stops))
	}
	fillMissingPercents(stops, known)
	d.Stops = stops
	return d, nil
}

// SplitTopLevel splits s on commas that are not inside parentheses, trimming
// each part. Unbalanced parentheses are an ErrInvalidSyntax.
func SplitTopLevel(s string) ([]string, error) {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced parentheses", ErrInvalidSyntax)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced parentheses", ErrInvalidSyntax)
	}
	return append(parts, strings.TrimSpace(s[start:])), nil
}

// parseStop reads "<color> [<percent>%]". ok is false when the percent was left out.
func parseStop(part string) (models.Stop, bool, error) {
	idx := strings.LastIndexAny(part, " \t")
	if idx > 0 {
		last := part[idx+1:]
		if strings.HasSuffix(last, "%") {
			p, err := parsePercent(last)
			if err != nil {
				return models.Stop{}, false, err
			}
			return models.Stop{Percent: models.ClampPercent(p), Color: strings.TrimSpace(part[:idx])}, true, nil
		}
	}
	return models.Stop{Color: part}, false, nil
}

func parseFromTo(fields []string) (LinearParams, error) {
	// from X% Y% to X% Y%
	if len(fields) != 6 || fields[3] != "to" {
		return LinearParams{}, fmt.Errorf("%w: expected \"from X%% Y%% to X%% Y%%\"", ErrInvalidSyntax)
	}
	from, err := parsePoint(fields[1], fields[2])
	if err != nil {
		return LinearParams{}, err
	}
	to, err := parsePoint(fields[4], fields[5])
	if err != nil {
		return LinearParams{}, err
	}
	return LinearParams{From: from, To: to}, nil
}

func parseRadialClause(rp *RadialParams, fields []string) error {
	var err error
	switch fields[0] {
	case "focus-angle":
		if len(fields) != 2 {
			return fmt.Errorf("%w: expected \"focus-angle Ndeg\"", ErrInvalidSyntax)
		}
		rp.FocusAngle, err = strconv.ParseFloat(strings.TrimSuffix(fields[1], "deg"), 64)
		if err != nil {
			return fmt.Errorf("%w: bad focus-angle %q", ErrInvalidSyntax, fields[1])
		}
	case "focus-distance":
		if len(fields) != 2 {
			return fmt.Errorf("%w: expected \"focus-distance N%%\"", ErrInvalidSyntax)
		}
		rp.FocusDistance, err = parsePercent(fields[1])
	case "center":
		if len(fields) != 3 {
			return fmt.Errorf("%w: expected \"center X%% Y%%\"", ErrInvalidSyntax)
		}
		rp.Center, err = parsePoint(fields[1], fields[2])
	case "radius":
		if len(fields) != 2 {
			return fmt.Errorf("%w: expected \"radius N%%\"", ErrInvalidSyntax)
		}
		rp.Radius, err = parsePercent(fields[1])
	}
	return err
}

func parsePoint(x, y string) (Point, error) {
	px, err := parsePercent(x)
	if err != nil {
		return Point{}, err
	}
	py, err := parsePercent(y)
	if err != nil {
		return Point{}, err
	}
	return Point{X: px, Y: py}, nil
}

func parsePercent(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil || math.IsNaN(p) {
		return 0, fmt.Errorf("%w: bad percentage %q", ErrInvalidSyntax, s)
	}
	return p, nil
}

// fillMissingPercents spaces unknown stops evenly between the known ones around them
func fillMissingPercents(stops []models.Stop, known []bool) {
	last := len(stops) - 1
	if !known[0] {
		stops[0].Percent = models.MinPercent
		known[0] = true
	}
	if !known[last] {
		stops[last].Percent = models.MaxPercent
		known[last] = true
	}
	prev := 0
	for i := 1; i <= last; i++ {
		if !known[i] {
			continue
		}
		gap := i - prev
		for j := prev + 1; j < i; j++ {
			t := float64(j-prev) / float64(gap)
			stops[j].Percent = stops[prev].Percent + t*(stops[i].Percent-stops[prev].Percent)
		}
		prev = i
	}
}
