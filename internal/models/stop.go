package models

import (
	"math"
	"strconv"
)

// Percent bounds for a color stop
const (
	MinPercent = 0.0
	MaxPercent = 100.0
)

// Stop is a plain (percent, color) pair, used for snapshots and comparisons
type Stop struct {
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

// String renders the stop the way it appears inside a gradient: "<color> <percent>%"
func (s Stop) String() string {
	return s.Color + " " + FormatPercent(s.Percent)
}

// FormatPercent formats a percent value with the shortest decimal form, e.g. "0%", "12.5%"
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// ClampPercent clamps p into [0,100]. NaN becomes 0.
func ClampPercent(p float64) float64 {
	if math.IsNaN(p) || p < MinPercent {
		return MinPercent
	}
	if p > MaxPercent {
		return MaxPercent
	}
	return p
}

// StopListener is called after a field of a ColorStop changes
type StopListener func(stop *ColorStop)

// ColorStop is one editable stop of a gradient. Both fields are observable:
// every change made through SetPercent or SetColor notifies the subscribers.
type ColorStop struct {
	percent float64
	color   string

	listeners map[int]StopListener
	nextID    int
}

// NewColorStop creates a stop with the given values, clamping the percent
func NewColorStop(percent float64, color string) *ColorStop {
	return &ColorStop{
		percent:   ClampPercent(percent),
		color:     color,
		listeners: make(map[int]StopListener),
	}
}

// Percent returns the stop position in [0,100]
func (s *ColorStop) Percent() float64 {
	return s.percent
}

// Color returns the color string as entered
func (s *ColorStop) Color() string {
	return s.color
}

// SetPercent stores the clamped percent and notifies if it changed
func (s *ColorStop) SetPercent(p float64) {
	p = ClampPercent(p)
	if p == s.percent {
		return
	}
	s.percent = p
	s.notify()
}

// SetColor stores the color as-is and notifies if it changed.
// Colors are never validated here; renderers decide what they accept.
func (s *ColorStop) SetColor(c string) {
	if c == s.color {
		return
	}
	s.color = c
	s.notify()
}

// Value returns a snapshot of the stop
func (s *ColorStop) Value() Stop {
	return Stop{Percent: s.percent, Color: s.color}
}

// Subscribe registers a listener and returns the func that removes it
func (s *ColorStop) Subscribe(fn StopListener) func() {
	if s.listeners == nil {
		s.listeners = make(map[int]StopListener)
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// ListenerCount returns how many listeners are attached
func (s *ColorStop) ListenerCount() int {
	return len(s.listeners)
}

// notify calls listeners in subscription order
func (s *ColorStop) notify() {
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			fn(s)
		}
	}
}
