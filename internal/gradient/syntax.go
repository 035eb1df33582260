package gradient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/balkashynov/grady/internal/models"
)

// Kind is the gradient flavor
type Kind int

const (
	Linear Kind = iota
	Radial
)

func (k Kind) String() string {
	switch k {
	case Radial:
		return "radial"
	default:
		return "linear"
	}
}

// ParseKind accepts "linear" or "radial" (case-insensitive)
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "":
		return Linear, nil
	case "radial":
		return Radial, nil
	}
	return Linear, fmt.Errorf("unknown gradient type %q. Use: linear or radial", s)
}

// RepeatMode controls how the pattern continues past the first and last stop
type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	Repeat
	Reflect
)

func (m RepeatMode) String() string {
	switch m {
	case Repeat:
		return "repeat"
	case Reflect:
		return "reflect"
	default:
		return "none"
	}
}

// Next cycles none -> repeat -> reflect -> none
func (m RepeatMode) Next() RepeatMode {
	return (m + 1) % 3
}

// ParseRepeatMode accepts "none", "repeat" or "reflect" (case-insensitive)
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return RepeatNone, nil
	case "repeat":
		return Repeat, nil
	case "reflect":
		return Reflect, nil
	}
	return RepeatNone, fmt.Errorf("unknown repeat mode %q. Use: none, repeat or reflect", s)
}

// Point is a position in percent of the shape's bounds
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return models.FormatPercent(p.X) + " " + models.FormatPercent(p.Y)
}

// LinearParams is the optional "from <point> to <point>" clause
type LinearParams struct {
	From Point
	To   Point
}

// DefaultLinearParams runs top to bottom
func DefaultLinearParams() LinearParams {
	return LinearParams{From: Point{0, 0}, To: Point{0, 100}}
}

// RadialParams holds the optional radial clauses
type RadialParams struct {
	FocusAngle    float64 // degrees
	FocusDistance float64 // percent of radius, -100..100
	Center        Point
	Radius        float64 // percent of the shape size
}

// DefaultRadialParams is a centered gradient reaching the shape's edge
func DefaultRadialParams() RadialParams {
	return RadialParams{Center: Point{50, 50}, Radius: 50}
}

// Config is everything besides the stops that shapes the gradient string.
// A nil Linear or Radial leaves the matching clauses out.
type Config struct {
	Kind   Kind
	Repeat RepeatMode
	Linear *LinearParams
	Radial *RadialParams
}

// BuildSyntax writes the gradient descriptor for stops in list order:
//
//	linear-gradient([from X% Y% to X% Y%, ][repeat|reflect, ]<color> <percent>%, ...)
//	radial-gradient([focus-angle Ndeg, focus-distance N%, center X% Y%, radius N%, ][repeat|reflect, ]<stops>)
//
// Parts are joined with ", ". RepeatNone adds no keyword, so two stops give
// "linear-gradient(#FF0000 0%, #0000FF 100%)", while Repeat and Reflect put
// "repeat, " or "reflect, " ahead of the stops. The function has no side effects.
func BuildSyntax(stops []models.Stop, cfg Config) string {
	parts := make([]string, 0, len(stops)+5)

	switch cfg.Kind {
	case Linear:
		if cfg.Linear != nil {
			parts = append(parts, "from "+cfg.Linear.From.String()+" to "+cfg.Linear.To.String())
		}
	case Radial:
		if r := cfg.Radial; r != nil {
			parts = append(parts,
				"focus-angle "+strconv.FormatFloat(r.FocusAngle, 'f', -1, 64)+"deg",
				"focus-distance "+models.FormatPercent(r.FocusDistance),
				"center "+r.Center.String(),
				"radius "+models.FormatPercent(r.Radius),
			)
		}
	}

	if cfg.Repeat != RepeatNone {
		parts = append(parts, cfg.Repeat.String())
	}

	for _, s := range stops {
		parts = append(parts, s.String())
	}

	return cfg.Kind.String() + "-gradient(" + strings.Join(parts, ", ") + ")"
}
