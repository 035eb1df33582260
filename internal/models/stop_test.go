package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{150, 100},
		{0, 0},
		{100, 100},
		{42.5, 42.5},
		{math.NaN(), 0},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPercent(tt.in), "ClampPercent(%v)", tt.in)
	}
}

func TestColorStopSettersClamp(t *testing.T) {
	s := NewColorStop(50, "#FFFFFF")

	s.SetPercent(-5)
	assert.Equal(t, 0.0, s.Percent())

	s.SetPercent(150)
	assert.Equal(t, 100.0, s.Percent())

	assert.Equal(t, 100.0, NewColorStop(300, "red").Percent())
}

func TestColorStopNotifiesOnlyOnChange(t *testing.T) {
	s := NewColorStop(0, "#000000")
	calls := 0
	s.Subscribe(func(*ColorStop) { calls++ })

	s.SetPercent(0)
	s.SetColor("#000000")
	assert.Equal(t, 0, calls)

	s.SetPercent(10)
	s.SetColor("rgba(0,0,0,0.5)")
	assert.Equal(t, 2, calls)

	// clamped to the stored value, so nothing changes
	s.SetPercent(100)
	s.SetPercent(250)
	assert.Equal(t, 3, calls)
}

func TestColorStopUnsubscribe(t *testing.T) {
	s := NewColorStop(0, "#000000")
	var order []string
	unsubA := s.Subscribe(func(*ColorStop) { order = append(order, "a") })
	s.Subscribe(func(*ColorStop) { order = append(order, "b") })
	assert.Equal(t, 2, s.ListenerCount())

	s.SetColor("#111111")
	assert.Equal(t, []string{"a", "b"}, order)

	unsubA()
	assert.Equal(t, 1, s.ListenerCount())
	s.SetColor("#222222")
	assert.Equal(t, []string{"a", "b", "b"}, order)
}

func TestStopString(t *testing.T) {
	assert.Equal(t, "#FF0000 0%", Stop{Percent: 0, Color: "#FF0000"}.String())
	assert.Equal(t, "red 12.5%", Stop{Percent: 12.5, Color: "red"}.String())
	assert.Equal(t, Stop{Percent: 30, Color: "blue"}, NewColorStop(30, "blue").Value())
}
