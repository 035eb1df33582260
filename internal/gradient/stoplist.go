package gradient

import (
	"fmt"

	"github.com/balkashynov/grady/internal/models"
)

// MinStops is the smallest number of stops a list may hold
const MinStops = 2

// End asks InsertStop to append instead of inserting mid-list
const End = -1

// Defaults for new stops
const (
	DefaultPercent = 0.0
	DefaultColor   = "#FFFFFF"
)

// RowHandle identifies the row of one stop. Handles are issued in increasing
// order starting at 1 and are never reused within a list.
type RowHandle uint64

// row ties a handle to its stop and the listener the list attached to it
type row struct {
	handle      RowHandle
	stop        *models.ColorStop
	unsubscribe func()
}

// StopList is the ordered collection of stops behind one gradient.
// List order is the order stops are written out; it is never re-sorted by percent.
type StopList struct {
	rows       []row
	lastHandle RowHandle

	callbacks map[int]func()
	nextCB    int
}

// NewStopList creates an empty list. Callers normally seed it with Seed.
func NewStopList() *StopList {
	return &StopList{callbacks: make(map[int]func())}
}

// Seed appends stops without firing change callbacks.
// Used to build the initial list before anyone is listening for rebuilds.
func (l *StopList) Seed(stops ...models.Stop) []RowHandle {
	handles := make([]RowHandle, 0, len(stops))
	for _, s := range stops {
		handles = append(handles, l.add(len(l.rows), models.NewColorStop(s.Percent, s.Color)))
	}
	return handles
}

// InsertStop creates a stop with the default percent and color and places it at
// afterIndex+1. When afterIndex is End, the last index, or out of range the stop
// is appended instead.
func (l *StopList) InsertStop(afterIndex int) RowHandle {
	return l.InsertStopValue(afterIndex, models.Stop{Percent: DefaultPercent, Color: DefaultColor})
}

// InsertStopValue is InsertStop with explicit initial values
func (l *StopList) InsertStopValue(afterIndex int, value models.Stop) RowHandle {
	pos := len(l.rows)
	if afterIndex >= 0 && afterIndex < len(l.rows)-1 {
		pos = afterIndex + 1
	}
	h := l.add(pos, models.NewColorStop(value.Percent, value.Color))
	l.changed()
	return h
}

// InsertAfter inserts a default stop after the row of h.
// An unresolvable handle falls back to appending.
func (l *StopList) InsertAfter(h RowHandle) RowHandle {
	return l.InsertStop(l.ResolvePosition(h))
}

// DeleteStop detaches the stop's listener and removes it from the list.
// The list never drops below MinStops entries.
func (l *StopList) DeleteStop(h RowHandle) error {
	if len(l.rows) <= MinStops {
		return fmt.Errorf("%w: a gradient needs at least %d color stops", ErrInvalidOperation, MinStops)
	}
	pos := l.ResolvePosition(h)
	if pos == -1 {
		return fmt.Errorf("%w: %d", ErrHandleNotFound, h)
	}
	l.rows[pos].unsubscribe()
	l.rows = append(l.rows[:pos], l.rows[pos+1:]...)
	l.changed()
	return nil
}

// ResolvePosition returns the index of the row with handle h, or -1
func (l *StopList) ResolvePosition(h RowHandle) int {
	for i, r := range l.rows {
		if r.handle == h {
			return i
		}
	}
	return -1
}

// OnAnyStopChanged registers fn to run after any field edit, insert or delete.
// The returned func removes the callback.
func (l *StopList) OnAnyStopChanged(fn func()) func() {
	id := l.nextCB
	l.nextCB++
	l.callbacks[id] = fn
	return func() {
		delete(l.callbacks, id)
	}
}

// Stop returns the stop behind a handle
func (l *StopList) Stop(h RowHandle) (*models.ColorStop, error) {
	pos := l.ResolvePosition(h)
	if pos == -1 {
		return nil, fmt.Errorf("%w: %d", ErrHandleNotFound, h)
	}
	return l.rows[pos].stop, nil
}

// At returns the handle and stop at index i
func (l *StopList) At(i int) (RowHandle, *models.ColorStop) {
	r := l.rows[i]
	return r.handle, r.stop
}

// Handles returns the row handles in list order
func (l *StopList) Handles() []RowHandle {
	handles := make([]RowHandle, len(l.rows))
	for i, r := range l.rows {
		handles[i] = r.handle
	}
	return handles
}

// Values returns a snapshot of every stop in list order
func (l *StopList) Values() []models.Stop {
	values := make([]models.Stop, len(l.rows))
	for i, r := range l.rows {
		values[i] = r.stop.Value()
	}
	return values
}

// Len returns the number of stops
func (l *StopList) Len() int {
	return len(l.rows)
}

// CanDelete reports whether the delete affordance is enabled for every row
func (l *StopList) CanDelete() bool {
	return len(l.rows) > MinStops
}

// Discard detaches every listener. The list must not be used afterwards.
func (l *StopList) Discard() {
	for _, r := range l.rows {
		r.unsubscribe()
	}
	l.rows = nil
	l.callbacks = make(map[int]func())
}

// add places a new stop at pos and hooks it up to the change callbacks
func (l *StopList) add(pos int, stop *models.ColorStop) RowHandle {
	l.lastHandle++
	r := row{
		handle:      l.lastHandle,
		stop:        stop,
		unsubscribe: stop.Subscribe(func(*models.ColorStop) { l.changed() }),
	}
	l.rows = append(l.rows, row{})
	copy(l.rows[pos+1:], l.rows[pos:])
	l.rows[pos] = r
	return r.handle
}

// changed runs the change callbacks in registration order
func (l *StopList) changed() {
	for id := 0; id < l.nextCB; id++ {
		if fn, ok := l.callbacks[id]; ok {
			fn()
		}
	}
}
