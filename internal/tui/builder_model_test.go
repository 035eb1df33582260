package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/grady/internal/gradient"
	"github.com/balkashynov/grady/internal/models"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m BuilderModel, keys ...string) BuilderModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		var ok bool
		m, ok = next.(BuilderModel)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m BuilderModel, text string) BuilderModel {
	t.Helper()
	for _, r := range text {
		m = press(t, m, string(r))
	}
	return m
}

func TestNewBuilderModelDefaults(t *testing.T) {
	m := NewBuilderModel(Options{})

	res := m.Result()
	assert.Equal(t, gradient.Linear, res.Kind)
	assert.Equal(t, "linear-gradient(#FF0000 0%, #0000FF 100%)", res.Syntax)
	assert.Equal(t, res.Syntax, m.rect.Background())
	assert.Equal(t, res.Syntax, m.circle.Background())
	assert.Len(t, m.rows.rows, 2)
}

func TestNewBuilderModelOptions(t *testing.T) {
	m := NewBuilderModel(Options{Kind: gradient.Radial, Repeat: gradient.Reflect, PreviewWidth: 20, PreviewHeight: 6})

	res := m.Result()
	assert.Equal(t, "radial-gradient(reflect, #FF0000 0%, #0000FF 100%)", res.Syntax)
	assert.Equal(t, 20, res.PreviewWidth)
	assert.Equal(t, 6, res.PreviewHeight)

	d, err := gradient.ParseSyntax("linear-gradient(repeat, red 0%, lime 50%, blue 100%)")
	require.NoError(t, err)
	m = NewBuilderModel(Options{Initial: &d})
	assert.Equal(t, "linear-gradient(repeat, red 0%, lime 50%, blue 100%)", m.Result().Syntax)
	assert.Len(t, m.rows.rows, 3)
}

func TestAddAndDeleteKeys(t *testing.T) {
	m := NewBuilderModel(Options{})

	m = press(t, m, "a")
	assert.Equal(t, 3, m.settings().Stops().Len())
	assert.Equal(t, 1, m.selected)
	assert.Len(t, m.rows.rows, 3)
	assert.Equal(t, "linear-gradient(#FF0000 0%, #FFFFFF 0%, #0000FF 100%)", m.applier.Last())

	m = press(t, m, "d")
	assert.Equal(t, 2, m.settings().Stops().Len())
	assert.Len(t, m.rows.rows, 2)

	m = press(t, m, "d")
	assert.Equal(t, 2, m.settings().Stops().Len())
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "at least 2")
}

func TestSliderKeys(t *testing.T) {
	m := NewBuilderModel(Options{})

	m = press(t, m, "right", "right", "L")
	_, stop := m.settings().Stops().At(0)
	assert.Equal(t, 12.0, stop.Percent())

	m = press(t, m, "down", "right")
	_, last := m.settings().Stops().At(1)
	assert.Equal(t, 100.0, last.Percent(), "clamped at 100")

	m = press(t, m, "up", "H", "H")
	assert.Equal(t, 0.0, stop.Percent(), "clamped at 0")
}

func TestEditColor(t *testing.T) {
	m := NewBuilderModel(Options{})
	builds := m.applier.Count()

	m = press(t, m, "enter")
	assert.Equal(t, EditColor, m.editing)
	state, _ := m.settings().State()
	assert.Equal(t, gradient.StateEditing, state)

	for range "#FF0000" {
		m = press(t, m, "backspace")
	}
	m = typeText(t, m, "#00ff00")
	assert.Equal(t, builds, m.applier.Count(), "typing alone does not rebuild")

	m = press(t, m, "enter")
	assert.Equal(t, EditNone, m.editing)
	assert.Equal(t, "linear-gradient(#00FF00 0%, #0000FF 100%)", m.Result().Syntax)
	assert.Equal(t, builds+1, m.applier.Count())

	state, _ = m.settings().State()
	assert.Equal(t, gradient.StateIdle, state)
}

func TestEditColorRejectsSecondColor(t *testing.T) {
	m := NewBuilderModel(Options{})
	builds := m.applier.Count()

	m = press(t, m, "enter", ",")
	m = typeText(t, m, " blue")
	m = press(t, m, "enter")
	assert.True(t, m.statusErr)
	assert.Equal(t, EditColor, m.editing, "stays in edit mode on bad input")
	assert.Equal(t, builds, m.applier.Count())
	assert.Equal(t, "linear-gradient(#FF0000 0%, #0000FF 100%)", m.Result().Syntax)

	d, err := gradient.ParseSyntax(m.Result().Syntax)
	require.NoError(t, err)
	assert.Len(t, d.Stops, m.settings().Stops().Len())

	m = press(t, m, "esc")
	assert.Equal(t, "#FF0000", m.selectedRow().color.Value())
}

func TestEditPercentAndCancel(t *testing.T) {
	m := NewBuilderModel(Options{})

	m = press(t, m, "p", "backspace")
	m = typeText(t, m, "150")
	m = press(t, m, "enter")
	_, stop := m.settings().Stops().At(0)
	assert.Equal(t, 100.0, stop.Percent())

	m = press(t, m, "p")
	m = typeText(t, m, "zz")
	m = press(t, m, "enter")
	assert.True(t, m.statusErr)
	assert.Equal(t, EditPercent, m.editing, "stays in edit mode on bad input")

	m = press(t, m, "esc")
	assert.Equal(t, EditNone, m.editing)
	row := m.selectedRow()
	require.NotNil(t, row)
	assert.Equal(t, "100", row.percent.Value())
}

func TestSwitchTypeKeys(t *testing.T) {
	m := NewBuilderModel(Options{})
	m = press(t, m, "a", "r")
	assert.Equal(t, "linear-gradient(repeat, #FF0000 0%, #FFFFFF 0%, #0000FF 100%)", m.Result().Syntax)

	m = press(t, m, "2")
	assert.Equal(t, "radial-gradient(#FF0000 0%, #0000FF 100%)", m.Result().Syntax)
	assert.Equal(t, 0, m.selected)
	assert.Len(t, m.rows.rows, 2)

	m = press(t, m, "tab")
	assert.Equal(t, gradient.Linear, m.Result().Kind)
	assert.Equal(t, "linear-gradient(#FF0000 0%, #0000FF 100%)", m.Result().Syntax)
}

func TestRowsPullModelChanges(t *testing.T) {
	rows := newRowSet()
	stop := models.NewColorStop(10, "#111111")
	rows.NewRow(1, stop)

	stop.SetColor("#222222")
	stop.SetPercent(55.5)
	row := rows.get(1)
	assert.Equal(t, "#222222", row.color.Value())
	assert.Equal(t, "55.5", row.percent.Value())

	rows.RemoveRow(1)
	assert.Nil(t, rows.get(1))
	assert.Equal(t, 0, stop.ListenerCount())
}

func TestViewAndResize(t *testing.T) {
	m := NewBuilderModel(Options{PreviewWidth: 30, PreviewHeight: 10})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 18})
	m = next.(BuilderModel)

	assert.Equal(t, 25, m.rect.Width)
	assert.Equal(t, 6, m.rect.Height)

	view := m.View()
	assert.Contains(t, view, "Color stops")
	assert.Contains(t, view, "linear-gradient(#FF0000 0%, #0000FF 100%)")

	m = press(t, m, "q")
	assert.Empty(t, m.View())
}
