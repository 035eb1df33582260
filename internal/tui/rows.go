package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/grady/internal/gradient"
	"github.com/balkashynov/grady/internal/models"
)

// stopRow is the UI row of one color stop: a color input and a percent input.
// User edits are pushed into the stop on commit; stop changes are pulled back
// into whichever input is not being typed into.
type stopRow struct {
	handle  gradient.RowHandle
	stop    *models.ColorStop
	color   textinput.Model
	percent textinput.Model

	unsubscribe func()
}

// rowSet is the row factory handed to the gradient settings
type rowSet struct {
	rows map[gradient.RowHandle]*stopRow
}

func newRowSet() *rowSet {
	return &rowSet{rows: make(map[gradient.RowHandle]*stopRow)}
}

// NewRow builds the inputs for a stop and subscribes them to its changes
func (r *rowSet) NewRow(h gradient.RowHandle, stop *models.ColorStop) {
	row := &stopRow{
		handle:  h,
		stop:    stop,
		color:   newInput("#RRGGBB or rgba(r, g, b, a)", 40, 24),
		percent: newInput("0-100", 7, 6),
	}
	row.pull()
	row.unsubscribe = stop.Subscribe(func(*models.ColorStop) { row.pull() })
	r.rows[h] = row
}

// RemoveRow drops the row and its subscription
func (r *rowSet) RemoveRow(h gradient.RowHandle) {
	row, ok := r.rows[h]
	if !ok {
		return
	}
	row.unsubscribe()
	delete(r.rows, h)
}

// get returns the row for h, nil if there is none
func (r *rowSet) get(h gradient.RowHandle) *stopRow {
	return r.rows[h]
}

// pull copies the stop values into inputs that are not focused
func (row *stopRow) pull() {
	if !row.color.Focused() {
		row.color.SetValue(row.stop.Color())
	}
	if !row.percent.Focused() {
		row.percent.SetValue(strconv.FormatFloat(row.stop.Percent(), 'f', -1, 64))
	}
}

// reset discards typed text and shows the stop values again
func (row *stopRow) reset() {
	row.color.Blur()
	row.percent.Blur()
	row.pull()
}

func newInput(placeholder string, limit, width int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = width

	// Apply color scheme
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	return in
}
