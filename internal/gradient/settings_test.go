package gradient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/grady/internal/models"
)

// recordingSink keeps every string it was handed
type recordingSink struct {
	applied []string
}

func (r *recordingSink) ApplyBackground(css string) {
	r.applied = append(r.applied, css)
}

// fakeRows tracks which rows exist
type fakeRows struct {
	rows    map[RowHandle]*models.ColorStop
	created []RowHandle
	removed []RowHandle
}

func newFakeRows() *fakeRows {
	return &fakeRows{rows: make(map[RowHandle]*models.ColorStop)}
}

func (f *fakeRows) NewRow(h RowHandle, stop *models.ColorStop) {
	f.rows[h] = stop
	f.created = append(f.created, h)
}

func (f *fakeRows) RemoveRow(h RowHandle) {
	delete(f.rows, h)
	f.removed = append(f.removed, h)
}

func TestNewSettingsDefaults(t *testing.T) {
	sink := &recordingSink{}
	rows := newFakeRows()
	s := NewSettings(Linear, sink, rows)

	assert.Equal(t, DefaultStops(), s.Stops().Values())
	assert.Len(t, rows.created, 2)
	assert.Empty(t, sink.applied)

	assert.Equal(t, "linear-gradient(#FF0000 0%, #0000FF 100%)", s.Rebuild())
	assert.Equal(t, []string{"linear-gradient(#FF0000 0%, #0000FF 100%)"}, sink.applied)
}

func TestSettingsRebuildsOncePerChange(t *testing.T) {
	sink := &recordingSink{}
	s := NewSettings(Linear, sink, nil)
	s.Rebuild()

	h := s.AddStopAt(0)
	assert.Len(t, sink.applied, 2)
	assert.Equal(t, "linear-gradient(#FF0000 0%, #FFFFFF 0%, #0000FF 100%)", s.Syntax())

	stop, err := s.Stops().Stop(h)
	require.NoError(t, err)
	stop.SetPercent(50)
	assert.Len(t, sink.applied, 3)
	stop.SetColor("#00FF00")
	assert.Len(t, sink.applied, 4)
	assert.Equal(t, "linear-gradient(#FF0000 0%, #00FF00 50%, #0000FF 100%)", s.Syntax())

	require.NoError(t, s.DeleteStop(h))
	assert.Len(t, sink.applied, 5)
	assert.Equal(t, "linear-gradient(#FF0000 0%, #0000FF 100%)", s.Syntax())
	assert.Equal(t, 5, s.Builds())
}

func TestSettingsRowsFollowList(t *testing.T) {
	rows := newFakeRows()
	s := NewSettings(Radial, nil, rows)
	first := s.Stops().Handles()[0]

	h := s.AddStop(first)
	assert.Contains(t, rows.rows, h)
	assert.Equal(t, 1, s.Stops().ResolvePosition(h))

	require.NoError(t, s.DeleteStop(h))
	assert.NotContains(t, rows.rows, h)

	err := s.DeleteStop(first)
	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.Contains(t, rows.rows, first)
	assert.Len(t, rows.rows, 2)
}

func TestAddStopValueHandsLiveStopToRow(t *testing.T) {
	rows := newFakeRows()
	s := NewSettings(Linear, nil, rows)

	h := s.AddStopValue(End, models.Stop{Percent: 40, Color: "#00FF00"})
	stop, err := s.Stops().Stop(h)
	require.NoError(t, err)
	require.NotNil(t, rows.rows[h])
	assert.Same(t, stop, rows.rows[h])
	assert.Equal(t, models.Stop{Percent: 40, Color: "#00FF00"}, rows.rows[h].Value())
}

func TestSettingsRepeatAndShape(t *testing.T) {
	sink := &recordingSink{}
	s := NewSettings(Radial, sink, nil)

	s.SetRepeatMode(Reflect)
	assert.Equal(t, "radial-gradient(reflect, #FF0000 0%, #0000FF 100%)", s.Syntax())

	// unchanged mode does not rebuild
	s.SetRepeatMode(Reflect)
	assert.Len(t, sink.applied, 1)

	s.SetRadialParams(&RadialParams{FocusAngle: 10, FocusDistance: 250, Center: Point{-5, 150}, Radius: 120})
	assert.Equal(t,
		"radial-gradient(focus-angle 10deg, focus-distance 100%, center 0% 100%, radius 100%, reflect, #FF0000 0%, #0000FF 100%)",
		s.Syntax())

	// linear clauses are ignored on a radial gradient
	s.SetLinearParams(&LinearParams{To: Point{100, 0}})
	assert.Len(t, sink.applied, 2)

	s.SetRadialParams(nil)
	assert.Equal(t, "radial-gradient(reflect, #FF0000 0%, #0000FF 100%)", s.Syntax())
}

func TestSettingsEditState(t *testing.T) {
	sink := &recordingSink{}
	s := NewSettings(Linear, sink, nil)
	h := s.AddStopAt(End)

	state, _ := s.State()
	assert.Equal(t, StateIdle, state)

	require.NoError(t, s.BeginEdit(h))
	state, editing := s.State()
	assert.Equal(t, StateEditing, state)
	assert.Equal(t, h, editing)

	// edits while editing still rebuild, and the list keeps its length
	stop, _ := s.Stops().Stop(h)
	builds := s.Builds()
	stop.SetColor("#ABCDEF")
	assert.Equal(t, builds+1, s.Builds())
	assert.Equal(t, 3, s.Stops().Len())

	s.EndEdit()
	state, _ = s.State()
	assert.Equal(t, StateIdle, state)

	assert.ErrorIs(t, s.BeginEdit(RowHandle(999)), ErrHandleNotFound)

	// deleting the edited row drops back to idle
	require.NoError(t, s.BeginEdit(h))
	require.NoError(t, s.DeleteStop(h))
	state, _ = s.State()
	assert.Equal(t, StateIdle, state)
}

func TestSettingsDiscard(t *testing.T) {
	sink := &recordingSink{}
	rows := newFakeRows()
	s := NewSettings(Linear, sink, rows)
	_, stop := s.Stops().At(0)

	s.Discard()
	stop.SetColor("#000000")

	assert.Empty(t, sink.applied)
	assert.Empty(t, rows.rows)
	assert.Len(t, rows.removed, 2)
}
