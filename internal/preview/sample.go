package preview

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/balkashynov/grady/internal/gradient"
)

// sampleStop is a stop resolved to a 0-1 offset and an opaque color
type sampleStop struct {
	offset float64
	color  colorful.Color
}

// Sampler evaluates a gradient descriptor at points of a unit box
type Sampler struct {
	desc  gradient.Descriptor
	stops []sampleStop
}

// NewSampler resolves the stop colors of d, composited over background.
// Offsets that go backwards are raised to the previous offset, the way CSS does;
// list order is kept.
func NewSampler(d gradient.Descriptor, background colorful.Color) (*Sampler, error) {
	s := &Sampler{desc: d, stops: make([]sampleStop, 0, len(d.Stops))}
	prev := 0.0
	for _, st := range d.Stops {
		c, alpha, err := ParseColor(st.Color)
		if err != nil {
			return nil, err
		}
		off := math.Max(st.Percent/100, prev)
		prev = off
		s.stops = append(s.stops, sampleStop{offset: off, color: background.BlendRgb(c, alpha)})
	}
	return s, nil
}

// At returns the color at (x, y), both in [0,1] of the shape's box
func (s *Sampler) At(x, y float64) colorful.Color {
	var t float64
	switch s.desc.Kind {
	case gradient.Radial:
		t = radialOffset(s.desc.RadialOrDefault(), x, y)
	default:
		t = linearOffset(s.desc.LinearOrDefault(), x, y)
	}
	return s.ColorAt(spread(t, s.desc.Repeat))
}

// ColorAt returns the color at offset t in [0,1]
func (s *Sampler) ColorAt(t float64) colorful.Color {
	first, last := s.stops[0], s.stops[len(s.stops)-1]
	if t <= first.offset {
		return first.color
	}
	if t >= last.offset {
		return last.color
	}
	for i := 1; i < len(s.stops); i++ {
		a, b := s.stops[i-1], s.stops[i]
		if t > b.offset {
			continue
		}
		span := b.offset - a.offset
		if span <= 0 {
			return b.color
		}
		return a.color.BlendRgb(b.color, (t-a.offset)/span)
	}
	return last.color
}

// linearOffset projects (x, y) onto the from->to vector
func linearOffset(p gradient.LinearParams, x, y float64) float64 {
	fx, fy := p.From.X/100, p.From.Y/100
	vx, vy := p.To.X/100-fx, p.To.Y/100-fy
	lenSq := vx*vx + vy*vy
	if lenSq == 0 {
		return 0
	}
	return ((x-fx)*vx + (y-fy)*vy) / lenSq
}

// radialOffset is the distance from the focus point to (x, y), relative to the
// distance from the focus to the circle edge along the same ray
func radialOffset(p gradient.RadialParams, x, y float64) float64 {
	r := p.Radius / 100
	if r <= 0 {
		return 1
	}
	cx, cy := p.Center.X/100, p.Center.Y/100

	// focus sits inside the circle, slightly short of the edge at ±100%
	fd := math.Max(-0.99, math.Min(0.99, p.FocusDistance/100)) * r
	angle := p.FocusAngle * math.Pi / 180
	fx, fy := cx+fd*math.Cos(angle), cy+fd*math.Sin(angle)

	dx, dy := x-fx, y-fy
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0
	}
	dx, dy = dx/dist, dy/dist

	mx, my := fx-cx, fy-cy
	md := mx*dx + my*dy
	edge := -md + math.Sqrt(md*md-(mx*mx+my*my)+r*r)
	if edge <= 0 {
		return 1
	}
	return dist / edge
}

// spread maps t into [0,1] according to the repeat mode
func spread(t float64, mode gradient.RepeatMode) float64 {
	switch mode {
	case gradient.Repeat:
		return t - math.Floor(t)
	case gradient.Reflect:
		m := math.Mod(math.Abs(t), 2)
		if m > 1 {
			return 2 - m
		}
		return m
	default:
		return clamp01(t)
	}
}
