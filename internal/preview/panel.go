package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/balkashynov/grady/internal/gradient"
)

// Surface is anything that can take a gradient string as its background
type Surface interface {
	SetBackground(css string)
}

// Applier fans one gradient string out to every surface.
// It is the sink the gradient settings rebuild into.
type Applier struct {
	surfaces []Surface
	last     string
	count    int
}

// NewApplier creates an applier over the given surfaces
func NewApplier(surfaces ...Surface) *Applier {
	return &Applier{surfaces: surfaces}
}

// ApplyBackground sets css on every surface
func (a *Applier) ApplyBackground(css string) {
	a.last = css
	a.count++
	for _, s := range a.surfaces {
		s.SetBackground(css)
	}
}

// Last returns the most recently applied string
func (a *Applier) Last() string {
	return a.last
}

// Count returns how many strings were applied
func (a *Applier) Count() int {
	return a.count
}

// Shape of a preview panel
type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeCircle
)

func (s Shape) String() string {
	if s == ShapeCircle {
		return "circle"
	}
	return "rectangle"
}

// Preview colors
const (
	ColorBackdrop = "#1B1530"
	ColorCaption  = "#B1B8C7"
	ColorError    = "#EF4444"
)

// Panel is a terminal preview surface: a rectangle filling its box or a
// circle (ellipse in cell units) inscribed in it
type Panel struct {
	Shape  Shape
	Width  int // cells
	Height int // cells

	css     string
	sampler *Sampler
	err     error
}

// NewRectangle creates a rectangle panel
func NewRectangle(width, height int) *Panel {
	return &Panel{Shape: ShapeRectangle, Width: width, Height: height}
}

// NewCircle creates a circle panel
func NewCircle(width, height int) *Panel {
	return &Panel{Shape: ShapeCircle, Width: width, Height: height}
}

// SetBackground parses css and prepares the panel for rendering.
// Unreadable strings or colors are kept as the panel error.
func (p *Panel) SetBackground(css string) {
	p.css = css
	p.sampler = nil

	d, err := gradient.ParseSyntax(css)
	if err != nil {
		p.err = err
		return
	}
	backdrop, _ := colorful.Hex(ColorBackdrop)
	p.sampler, p.err = NewSampler(d, backdrop)
}

// Background returns the last applied gradient string
func (p *Panel) Background() string {
	return p.css
}

// Err returns why the last background could not be painted, if it could not
func (p *Panel) Err() error {
	return p.err
}

// Sampler returns the sampler for the last background, nil if it could not be read
func (p *Panel) Sampler() *Sampler {
	return p.sampler
}

// Resize changes the panel size in cells
func (p *Panel) Resize(width, height int) {
	p.Width, p.Height = width, height
}

// Cells returns the color of every cell, row by row. Cells outside the shape are nil.
func (p *Panel) Cells() [][]*colorful.Color {
	if p.sampler == nil || p.Width <= 0 || p.Height <= 0 {
		return nil
	}
	cells := make([][]*colorful.Color, p.Height)
	for row := 0; row < p.Height; row++ {
		cells[row] = make([]*colorful.Color, p.Width)
		y := (float64(row) + 0.5) / float64(p.Height)
		for col := 0; col < p.Width; col++ {
			x := (float64(col) + 0.5) / float64(p.Width)
			if p.Shape == ShapeCircle && !insideEllipse(x, y) {
				continue
			}
			c := p.sampler.At(x, y)
			cells[row][col] = &c
		}
	}
	return cells
}

// Render draws the panel with lipgloss background colors
func (p *Panel) Render() string {
	if p.err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render(fmt.Sprintf("can't preview: %v", p.err))
	}
	cells := p.Cells()
	if cells == nil {
		return strings.Repeat(strings.Repeat(" ", p.Width)+"\n", max(p.Height-1, 0)) + strings.Repeat(" ", p.Width)
	}

	lines := make([]string, len(cells))
	for i, row := range cells {
		var b strings.Builder
		for _, c := range row {
			if c == nil {
				b.WriteString(" ")
				continue
			}
			b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Clamped().Hex())).Render(" "))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Caption describes the panel size, like "Width : 40  Height : 12"
func (p *Panel) Caption() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCaption))
	bold := style.Bold(true)
	if p.Shape == ShapeCircle {
		return bold.Render("X-Radius : ") + style.Render(fmt.Sprintf("%g", float64(p.Width)/2)) + "  " +
			bold.Render("Y-Radius : ") + style.Render(fmt.Sprintf("%g", float64(p.Height)/2))
	}
	return bold.Render("Width : ") + style.Render(fmt.Sprintf("%d", p.Width)) + "  " +
		bold.Render("Height : ") + style.Render(fmt.Sprintf("%d", p.Height))
}

// insideEllipse reports whether a unit-box point lies in the inscribed ellipse
func insideEllipse(x, y float64) bool {
	dx, dy := (x-0.5)/0.5, (y-0.5)/0.5
	return dx*dx+dy*dy <= 1
}
