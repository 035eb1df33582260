package gradient

import (
	"fmt"

	"github.com/balkashynov/grady/internal/models"
)

// Sink receives every rebuilt gradient string and paints it somewhere
type Sink interface {
	ApplyBackground(css string)
}

// SinkFunc adapts a plain func to Sink
type SinkFunc func(css string)

// ApplyBackground calls f(css)
func (f SinkFunc) ApplyBackground(css string) { f(css) }

// RowFactory builds the UI row for a stop. NewRow is called once per stop,
// in list order for the initial stops and on every insert afterwards.
// Rows push user input into the stop with its setters and may Subscribe to it
// to pull changes back.
type RowFactory interface {
	NewRow(h RowHandle, stop *models.ColorStop)
	RemoveRow(h RowHandle)
}

// State of a settings component
type State int

const (
	StateIdle State = iota
	StateEditing
)

func (s State) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "idle"
}

// DefaultStops are the two stops every new gradient starts with
func DefaultStops() []models.Stop {
	return []models.Stop{
		{Percent: 0, Color: "#FF0000"},
		{Percent: 100, Color: "#0000FF"},
	}
}

// Settings is the editor state of one gradient type: its stop list, repeat
// mode and shape parameters. Every change rebuilds the gradient string
// synchronously and hands it to the sink once.
type Settings struct {
	kind   Kind
	stops  *StopList
	repeat RepeatMode
	linear *LinearParams
	radial *RadialParams

	sink Sink
	rows RowFactory

	state   State
	editing RowHandle
	syntax  string
	builds  int

	unsubscribe func()
}

// NewSettings creates a settings component with the default stops.
// sink and rows may be nil. No rebuild happens until Rebuild is called.
func NewSettings(kind Kind, sink Sink, rows RowFactory) *Settings {
	s := &Settings{
		kind:  kind,
		stops: NewStopList(),
		sink:  sink,
		rows:  rows,
	}
	s.stops.Seed(DefaultStops()...)
	if rows != nil {
		for i := 0; i < s.stops.Len(); i++ {
			rows.NewRow(s.stops.At(i))
		}
	}
	s.unsubscribe = s.stops.OnAnyStopChanged(func() { s.Rebuild() })
	return s
}

// Kind returns the gradient type
func (s *Settings) Kind() Kind {
	return s.kind
}

// Stops exposes the stop list for reading and field edits
func (s *Settings) Stops() *StopList {
	return s.stops
}

// Rebuild regenerates the gradient string and applies it to the sink
func (s *Settings) Rebuild() string {
	s.syntax = BuildSyntax(s.stops.Values(), s.Config())
	s.builds++
	if s.sink != nil {
		s.sink.ApplyBackground(s.syntax)
	}
	return s.syntax
}

// Syntax returns the last built gradient string
func (s *Settings) Syntax() string {
	return s.syntax
}

// Builds counts rebuilds since creation
func (s *Settings) Builds() int {
	return s.builds
}

// Config returns the non-stop part of the gradient
func (s *Settings) Config() Config {
	cfg := Config{Kind: s.kind, Repeat: s.repeat}
	switch s.kind {
	case Linear:
		cfg.Linear = s.linear
	case Radial:
		cfg.Radial = s.radial
	}
	return cfg
}

// AddStop inserts a default stop after the row of h and creates its UI row.
// An unknown h appends.
func (s *Settings) AddStop(after RowHandle) RowHandle {
	return s.AddStopAt(s.stops.ResolvePosition(after))
}

// AddStopAt inserts a default stop after index afterIndex (End appends)
func (s *Settings) AddStopAt(afterIndex int) RowHandle {
	return s.AddStopValue(afterIndex, models.Stop{Percent: DefaultPercent, Color: DefaultColor})
}

// AddStopValue inserts a stop with explicit values after index afterIndex
func (s *Settings) AddStopValue(afterIndex int, value models.Stop) RowHandle {
	h := s.stops.InsertStopValue(afterIndex, value)
	if s.rows != nil {
		stop, err := s.stops.Stop(h)
		if err != nil {
			panic(fmt.Sprintf("stop list lost freshly inserted row %d: %v", h, err))
		}
		s.rows.NewRow(h, stop)
	}
	return h
}

// DeleteStop removes the stop and its row. Rejected with ErrInvalidOperation
// when only MinStops stops remain.
func (s *Settings) DeleteStop(h RowHandle) error {
	if err := s.stops.DeleteStop(h); err != nil {
		return err
	}
	if s.editing == h {
		s.EndEdit()
	}
	if s.rows != nil {
		s.rows.RemoveRow(h)
	}
	return nil
}

// SetRepeatMode changes the repeat mode and rebuilds
func (s *Settings) SetRepeatMode(m RepeatMode) {
	if m == s.repeat {
		return
	}
	s.repeat = m
	s.Rebuild()
}

// RepeatMode returns the current repeat mode
func (s *Settings) RepeatMode() RepeatMode {
	return s.repeat
}

// SetLinearParams sets or clears (nil) the from/to clause and rebuilds.
// Ignored for radial settings.
func (s *Settings) SetLinearParams(p *LinearParams) {
	if s.kind != Linear {
		return
	}
	if p != nil {
		cp := LinearParams{From: clampPoint(p.From), To: clampPoint(p.To)}
		p = &cp
	}
	s.linear = p
	s.Rebuild()
}

// SetRadialParams sets or clears (nil) the radial clauses and rebuilds.
// Ignored for linear settings.
func (s *Settings) SetRadialParams(p *RadialParams) {
	if s.kind != Radial {
		return
	}
	if p != nil {
		cp := *p
		cp.Center = clampPoint(cp.Center)
		cp.Radius = models.ClampPercent(cp.Radius)
		cp.FocusDistance = clampRange(cp.FocusDistance, -100, 100)
		p = &cp
	}
	s.radial = p
	s.Rebuild()
}

// BeginEdit marks the row of h as being edited
func (s *Settings) BeginEdit(h RowHandle) error {
	if _, err := s.stops.Stop(h); err != nil {
		return err
	}
	s.state = StateEditing
	s.editing = h
	return nil
}

// EndEdit returns to idle
func (s *Settings) EndEdit() {
	s.state = StateIdle
	s.editing = 0
}

// State returns the current state and, while editing, the edited row
func (s *Settings) State() (State, RowHandle) {
	return s.state, s.editing
}

// Discard detaches every listener and row. The settings must not be used afterwards.
func (s *Settings) Discard() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	if s.rows != nil {
		for _, h := range s.stops.Handles() {
			s.rows.RemoveRow(h)
		}
	}
	s.stops.Discard()
	s.sink = nil
	s.rows = nil
}

func clampPoint(p Point) Point {
	return Point{X: models.ClampPercent(p.X), Y: models.ClampPercent(p.Y)}
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
