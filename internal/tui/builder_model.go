package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/grady/internal/gradient"
	"github.com/balkashynov/grady/internal/parser"
	"github.com/balkashynov/grady/internal/preview"
)

// EditField is the input being typed into
type EditField int

const (
	EditNone EditField = iota
	EditColor
	EditPercent
)

// Options configure a new builder model
type Options struct {
	Kind          gradient.Kind
	Repeat        gradient.RepeatMode
	PreviewWidth  int
	PreviewHeight int

	// Initial, when set, is loaded instead of the default stops
	Initial *gradient.Descriptor
}

// Result is what the editor was showing when it closed
type Result struct {
	Kind          gradient.Kind
	Repeat        gradient.RepeatMode
	Syntax        string
	PreviewWidth  int
	PreviewHeight int
}

// BuilderModel is the gradient editor: stop rows on the left, the rectangle
// and circle previews on the right, the generated string underneath
type BuilderModel struct {
	width  int
	height int

	builder *gradient.Builder
	rows    *rowSet
	applier *preview.Applier
	rect    *preview.Panel
	circle  *preview.Panel

	// preferred preview size, shrunk to fit the window
	previewWidth  int
	previewHeight int

	selected  int
	editing   EditField
	trueColor bool

	status    string
	statusErr bool
	quitting  bool
}

// NewBuilderModel creates the editor and builds the first gradient
func NewBuilderModel(opts Options) BuilderModel {
	if opts.PreviewWidth <= 0 {
		opts.PreviewWidth = 36
	}
	if opts.PreviewHeight <= 0 {
		opts.PreviewHeight = 12
	}

	rect := preview.NewRectangle(opts.PreviewWidth, opts.PreviewHeight)
	circle := preview.NewCircle(opts.PreviewWidth, opts.PreviewHeight)
	applier := preview.NewApplier(rect, circle)
	rows := newRowSet()

	m := BuilderModel{
		builder:       gradient.NewBuilder(applier, rows),
		rows:          rows,
		applier:       applier,
		rect:          rect,
		circle:        circle,
		previewWidth:  opts.PreviewWidth,
		previewHeight: opts.PreviewHeight,
		trueColor:     supportsTrueColor(),
	}

	if opts.Initial != nil {
		m.builder.Load(*opts.Initial)
	} else {
		if opts.Kind != gradient.Linear {
			m.builder.SelectType(opts.Kind)
		}
		m.settings().SetRepeatMode(opts.Repeat)
	}
	return m
}

// Init initializes the model
func (m BuilderModel) Init() tea.Cmd {
	return nil
}

// Result reports the final state of the editor
func (m BuilderModel) Result() Result {
	s := m.settings()
	return Result{
		Kind:          s.Kind(),
		Repeat:        s.RepeatMode(),
		Syntax:        s.Syntax(),
		PreviewWidth:  m.previewWidth,
		PreviewHeight: m.previewHeight,
	}
}

func (m BuilderModel) settings() *gradient.Settings {
	return m.builder.Active()
}

// selectedRow returns the row under the cursor
func (m BuilderModel) selectedRow() *stopRow {
	stops := m.settings().Stops()
	if m.selected < 0 || m.selected >= stops.Len() {
		return nil
	}
	h, _ := stops.At(m.selected)
	return m.rows.get(h)
}

// Update handles messages
func (m BuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fitPreviews()
		return m, nil

	case tea.KeyMsg:
		if m.editing != EditNone {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

// handleKeys handles keys while no input is focused
func (m BuilderModel) handleKeys(msg tea.KeyMsg) (BuilderModel, tea.Cmd) {
	m.status = ""
	m.statusErr = false
	stops := m.settings().Stops()

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "1":
		return m.switchType(gradient.Linear), nil

	case "2":
		return m.switchType(gradient.Radial), nil

	case "tab":
		if m.settings().Kind() == gradient.Linear {
			return m.switchType(gradient.Radial), nil
		}
		return m.switchType(gradient.Linear), nil

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.selected < stops.Len()-1 {
			m.selected++
		}
		return m, nil

	case "left", "h":
		return m.nudgePercent(-1), nil

	case "right", "l":
		return m.nudgePercent(1), nil

	case "shift+left", "H":
		return m.nudgePercent(-10), nil

	case "shift+right", "L":
		return m.nudgePercent(10), nil

	case "enter", "e":
		return m.beginEdit(EditColor)

	case "p":
		return m.beginEdit(EditPercent)

	case "a", "+":
		h := m.settings().AddStopAt(m.selected)
		m.selected = stops.ResolvePosition(h)
		m.status = "Added a color stop"
		return m, nil

	case "d", "x", "-":
		row := m.selectedRow()
		if row == nil {
			return m, nil
		}
		if err := m.settings().DeleteStop(row.handle); err != nil {
			m.statusErr = true
			if errors.Is(err, gradient.ErrInvalidOperation) {
				m.status = fmt.Sprintf("A gradient needs at least %d color stops", gradient.MinStops)
			} else {
				m.status = err.Error()
			}
			return m, nil
		}
		if m.selected >= stops.Len() {
			m.selected = stops.Len() - 1
		}
		m.status = "Deleted a color stop"
		return m, nil

	case "r":
		s := m.settings()
		s.SetRepeatMode(s.RepeatMode().Next())
		m.status = "Repeat mode: " + s.RepeatMode().String()
		return m, nil
	}

	return m, nil
}

// handleEditKeys handles keys while a color or percent input is focused
func (m BuilderModel) handleEditKeys(msg tea.KeyMsg) (BuilderModel, tea.Cmd) {
	row := m.selectedRow()
	if row == nil {
		m.editing = EditNone
		m.settings().EndEdit()
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		row.reset()
		m.editing = EditNone
		m.settings().EndEdit()
		return m, nil

	case "enter":
		return m.commitEdit(row), nil
	}

	var cmd tea.Cmd
	switch m.editing {
	case EditColor:
		row.color, cmd = row.color.Update(msg)
	case EditPercent:
		row.percent, cmd = row.percent.Update(msg)
	}
	return m, cmd
}

// beginEdit focuses one input of the selected row
func (m BuilderModel) beginEdit(field EditField) (BuilderModel, tea.Cmd) {
	row := m.selectedRow()
	if row == nil {
		return m, nil
	}
	if err := m.settings().BeginEdit(row.handle); err != nil {
		m.status, m.statusErr = err.Error(), true
		return m, nil
	}
	m.editing = field
	if field == EditPercent {
		return m, row.percent.Focus()
	}
	return m, row.color.Focus()
}

// commitEdit pushes the typed value into the stop
func (m BuilderModel) commitEdit(row *stopRow) BuilderModel {
	switch m.editing {
	case EditColor:
		color := parser.NormalizeColor(row.color.Value())
		if err := parser.CheckColor(color); err != nil {
			m.status, m.statusErr = err.Error(), true
			return m
		}
		row.color.Blur()
		row.stop.SetColor(color)
	case EditPercent:
		p, err := parser.ParsePercent(row.percent.Value())
		if err != nil {
			m.status, m.statusErr = err.Error(), true
			return m
		}
		row.percent.Blur()
		row.stop.SetPercent(p)
	}
	row.pull()
	m.editing = EditNone
	m.settings().EndEdit()
	return m
}

// nudgePercent moves the selected stop like a slider
func (m BuilderModel) nudgePercent(delta float64) BuilderModel {
	if row := m.selectedRow(); row != nil {
		row.stop.SetPercent(row.stop.Percent() + delta)
	}
	return m
}

// switchType replaces the settings with a fresh set for kind
func (m BuilderModel) switchType(kind gradient.Kind) BuilderModel {
	m.builder.SelectType(kind)
	m.selected = 0
	m.status = "Switched to " + kind.String() + " gradient"
	return m
}

// fitPreviews shrinks the panels to the window, never past the preferred size
func (m *BuilderModel) fitPreviews() {
	w := (m.width - 50) / 2
	if w > m.previewWidth {
		w = m.previewWidth
	}
	if w < 8 {
		w = 8
	}
	h := m.height - 12
	if h > m.previewHeight {
		h = m.previewHeight
	}
	if h < 4 {
		h = 4
	}
	m.rect.Resize(w, h)
	m.circle.Resize(w, h)
}

// View renders the TUI
func (m BuilderModel) View() string {
	if m.quitting {
		return ""
	}

	header := m.renderHeader()
	left := m.renderStops()
	right := m.renderPreviews()

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		panelStyle.Render(left),
		" ",
		panelStyle.Render(right),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		m.renderSyntax(),
		m.renderStatus(),
		m.renderHelpBar(),
	)
}

// renderHeader renders the title and the gradient type tabs
func (m BuilderModel) renderHeader() string {
	title := renderGradientText("◆ Gradient Builder", m.rect.Sampler(), m.trueColor)

	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Padding(0, 1)

	var tabs []string
	for _, k := range []gradient.Kind{gradient.Linear, gradient.Radial} {
		label := strings.ToUpper(k.String()[:1]) + k.String()[1:]
		if k == m.settings().Kind() {
			tabs = append(tabs, active.Render(label))
		} else {
			tabs = append(tabs, inactive.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "   ", strings.Join(tabs, " "))
}

// renderStops renders one row per color stop
func (m BuilderModel) renderStops() string {
	var b strings.Builder
	s := m.settings()
	stops := s.Stops()

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(headerStyle.Render("Color stops"))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).
		Render("repeat: " + s.RepeatMode().String()))
	b.WriteString("\n\n")

	canDelete := stops.CanDelete()
	for i := 0; i < stops.Len(); i++ {
		h, _ := stops.At(i)
		row := m.rows.get(h)
		if row == nil {
			continue
		}
		b.WriteString(m.renderRow(row, i == m.selected, canDelete))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow renders swatch, color, percent slider and the add/delete affordances
func (m BuilderModel) renderRow(row *stopRow, selected, canDelete bool) string {
	marker := "  "
	if selected {
		marker = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render("▶ ")
	}

	swatch := "  "
	if c, alpha, err := preview.ParseColor(row.stop.Color()); err == nil && alpha > 0 {
		swatch = lipgloss.NewStyle().Background(lipgloss.Color(c.Clamped().Hex())).Render("  ")
	} else if err != nil {
		swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("??")
	}

	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	colorText := valueStyle.Width(24).Render(row.stop.Color())
	percentText := valueStyle.Width(6).Render(fmtPercent(row.stop.Percent()))
	if selected && m.editing == EditColor {
		colorText = lipgloss.NewStyle().Width(24).Render(row.color.View())
	}
	if selected && m.editing == EditPercent {
		percentText = lipgloss.NewStyle().Width(6).Render(row.percent.View())
	}

	addStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	delStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	if !canDelete {
		delStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	}

	return marker + swatch + " " + colorText + " " + renderSlider(row.stop.Percent(), 20) + " " + percentText +
		" " + addStyle.Render("[+]") + " " + delStyle.Render("[x]")
}

// renderSlider draws a percent as a horizontal bar
func renderSlider(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	on := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(strings.Repeat("━", filled))
	off := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder)).Render(strings.Repeat("─", width-filled))
	return on + off
}

func fmtPercent(p float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", p), ".0") + "%"
}

// renderPreviews renders the rectangle and circle side by side with their captions
func (m BuilderModel) renderPreviews() string {
	rect := lipgloss.JoinVertical(lipgloss.Left, m.rect.Render(), m.rect.Caption())
	circle := lipgloss.JoinVertical(lipgloss.Left, m.circle.Render(), m.circle.Caption())
	gap := lipgloss.NewStyle().Background(lipgloss.Color(ColorPanelBackground)).Render("  ")
	return lipgloss.JoinHorizontal(lipgloss.Top, rect, gap, circle)
}

// renderSyntax renders the generated gradient string
func (m BuilderModel) renderSyntax() string {
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Render("-fx-background-color: ")
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Render(m.settings().Syntax())
	return label + value
}

// renderStatus renders the last status message
func (m BuilderModel) renderStatus() string {
	if m.status == "" {
		return ""
	}
	color := ColorSuccess
	if m.statusErr {
		color = ColorError
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(m.status)
}

// renderHelpBar renders the help bar at the bottom
func (m BuilderModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText))

	if m.editing != EditNone {
		return helpStyle.Render("enter: apply • esc: cancel")
	}
	return helpStyle.Render("1/2/tab: linear/radial • ↑/↓: select • ←/→: move (shift ±10) • enter: color • p: percent • a: add • d: delete • r: repeat • q: quit")
}
