package gradient

// Builder owns the active settings component and swaps it when the gradient
// type changes. Nothing carries over between types.
type Builder struct {
	sink   Sink
	rows   RowFactory
	active *Settings
}

// NewBuilder creates a builder with a linear gradient selected and built
func NewBuilder(sink Sink, rows RowFactory) *Builder {
	b := &Builder{sink: sink, rows: rows}
	b.SelectType(Linear)
	return b
}

// SelectType discards the current settings, creates fresh ones for kind with
// the default stops and rebuilds immediately. Selecting the active type again
// also starts over, matching a click on the already-selected type button.
func (b *Builder) SelectType(kind Kind) *Settings {
	if b.active != nil {
		b.active.Discard()
	}
	b.active = NewSettings(kind, b.sink, b.rows)
	b.active.Rebuild()
	return b.active
}

// Active returns the current settings component
func (b *Builder) Active() *Settings {
	return b.active
}

// Load starts over with the type of d and replays its stops, repeat mode and
// shape clauses into the fresh settings
func (b *Builder) Load(d Descriptor) *Settings {
	s := b.SelectType(d.Kind)
	for i, v := range d.Stops {
		if i < s.Stops().Len() {
			_, stop := s.Stops().At(i)
			stop.SetPercent(v.Percent)
			stop.SetColor(v.Color)
			continue
		}
		s.AddStopValue(End, v)
	}
	s.SetRepeatMode(d.Repeat)
	if d.Linear != nil {
		s.SetLinearParams(d.Linear)
	}
	if d.Radial != nil {
		s.SetRadialParams(d.Radial)
	}
	return s
}
