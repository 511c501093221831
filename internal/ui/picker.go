package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"branchout/internal/catalog"
	"branchout/internal/models"
	"branchout/internal/selection"
)

// Layout: header line, filter line, list rows, divider, help line.
// Mouse row math depends on these staying fixed.
const (
	headerLines = 2
	footerLines = 2
)

// Outcome is the terminal state of a picker session.
type Outcome struct {
	Branch  *models.Branch // confirmed selection; nil when aborted
	Aborted bool
}

// Model is the interactive branch picker. It is strictly sequential:
// one message, one state mutation, one re-render.
type Model struct {
	cat    catalog.Catalog
	sel    *selection.Selection
	input  textinput.Model
	styles *Styles

	width  int
	height int
	offset int // first visible row of the filtered view

	choice  *models.Branch
	aborted bool
}

func NewModel(cat catalog.Catalog, styles *Styles) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "filter branches"
	ti.Focus()

	start := cat.CurrentIndex()
	if start < 0 {
		start = 0
	}

	return Model{
		cat:    cat,
		sel:    selection.New(cat.Entries(), start),
		input:  ti,
		styles: styles,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			if br, ok := m.sel.Current(); ok {
				m.choice = &br
				return m, tea.Quit
			}
			return m, nil

		case "up", "ctrl+p":
			m.sel.Move(selection.Up)
			m.ensureVisible()
			return m, nil

		case "down", "ctrl+n":
			m.sel.Move(selection.Down)
			m.ensureVisible()
			return m, nil

		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			if m.input.Value() != m.sel.Query() {
				m.sel.SetQuery(m.input.Value())
				m.ensureVisible()
			}
			return m, cmd
		}

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.InterruptMsg:
		// External interrupt; never checkout, always restore.
		m.aborted = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		m.ensureVisible()
		return m, nil
	}

	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.sel.Move(selection.Up)
		m.ensureVisible()

	case tea.MouseButtonWheelDown:
		m.sel.Move(selection.Down)
		m.ensureVisible()

	case tea.MouseButtonLeft:
		idx := m.offset + msg.Y - headerLines
		act, ok := m.sel.ActivateAt(idx)
		if !ok {
			return m, nil
		}
		if act == selection.DoubleActivated {
			if br, sel := m.sel.Current(); sel {
				m.choice = &br
				return m, tea.Quit
			}
		}
		m.ensureVisible()
	}

	return m, nil
}

// Outcome reports the session result once the program has finished.
func (m Model) Outcome() Outcome {
	return Outcome{Branch: m.choice, Aborted: m.aborted || m.choice == nil}
}

// listHeight is the number of list rows that fit the terminal. Before
// the first WindowSizeMsg the whole view is considered visible.
func (m Model) listHeight() int {
	if m.height == 0 {
		return m.sel.Len()
	}
	h := m.height - headerLines - footerLines
	if h < 1 {
		h = 1
	}
	return h
}

// ensureVisible scrolls the window so the cursor stays on screen.
func (m *Model) ensureVisible() {
	n := m.sel.Len()
	if n == 0 {
		m.offset = 0
		return
	}
	vis := m.listHeight()
	cursor := m.sel.Cursor()
	if cursor < m.offset {
		m.offset = cursor
	}
	if cursor >= m.offset+vis {
		m.offset = cursor - vis + 1
	}
	if max := n - vis; m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) View() string {
	var out strings.Builder

	header := m.styles.HeaderStyle().Render("Switch branch") + " " +
		m.styles.CountStyle().Render(fmt.Sprintf("%d/%d", m.sel.Len(), m.cat.Len()))
	out.WriteString(header + "\n")
	out.WriteString(m.input.View() + "\n")

	view := m.sel.View()
	if len(view) == 0 {
		out.WriteString(m.styles.CountStyle().Render("  (no matching branches)") + "\n")
	} else {
		vis := m.listHeight()
		end := m.offset + vis
		if end > len(view) {
			end = len(view)
		}
		for i := m.offset; i < end; i++ {
			out.WriteString(m.renderRow(view[i], i == m.sel.Cursor()) + "\n")
		}
	}

	out.WriteString(m.renderFooter())
	return out.String()
}

func (m Model) renderRow(b models.Branch, selected bool) string {
	marker := "  "
	if b.IsCurrent {
		marker = "* "
	}

	var name string
	switch {
	case b.IsCurrent:
		name = m.styles.CurrentStyle().Render(b.DisplayName())
	case selected:
		name = m.styles.CursorStyle().Render(b.DisplayName())
	default:
		name = m.styles.BranchStyle().Render(b.DisplayName())
	}

	line := marker + name
	if b.Kind == models.KindRemote {
		tag := "[" + b.Remote + "]"
		if b.HasLocalTracking {
			tag = "[" + b.Remote + " · tracked]"
		}
		line += " " + m.styles.RemoteStyle().Render(tag)
	}

	if selected {
		return m.styles.CursorStyle().Render("▸ ") + line
	}
	return "  " + line
}

func (m Model) renderFooter() string {
	width := m.width
	if width <= 0 {
		width = 40
	}
	divider := m.styles.DividerStyle().Render(strings.Repeat("─", width))

	keys := []string{
		"↑/↓: navigate",
		"enter: checkout",
		"esc: cancel",
	}
	help := m.styles.HelpStyle().Render(strings.Join(keys, " • "))

	return lipgloss.JoinVertical(lipgloss.Left, divider, help)
}
