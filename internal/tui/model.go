// Package tui provides the terminal front end for the lazy-loading file
// browser, built on Bubble Tea. All tree state lives in the controller;
// the model only tracks the cursor, scrolling, and a row snapshot.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"lazytree/internal/config"
	"lazytree/internal/tree"
	"lazytree/pkg/types"
)

// treeChangedMsg signals that the controller's state changed, usually
// because a background load settled.
type treeChangedMsg struct{}

type Model struct {
	ctrl   *tree.Controller
	styles Styles

	rows   []types.Row
	cursor int
	offset int
	width  int
	height int

	spinner spinner.Model
	changes chan struct{}
}

// New creates a model browsing the given root node.
func New(cfg *config.Config, root types.Node) *Model {
	changes := make(chan struct{}, 1)

	ctrl := tree.New(root,
		tree.WithPlaceholderRows(cfg.Display.PlaceholderRows),
		tree.WithOnChange(func() {
			// Coalesce bursts; the model re-snapshots on receipt.
			select {
			case changes <- struct{}{}:
			default:
			}
		}),
	)

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &Model{
		ctrl:    ctrl,
		styles:  NewStyles(cfg),
		spinner: s,
		changes: changes,
		width:   80,
		height:  24,
	}
	m.rows = ctrl.Rows()
	return m
}

// Controller exposes the tree controller, mainly for tests.
func (m *Model) Controller() *tree.Controller {
	return m.ctrl
}

// Cursor returns the current cursor index.
func (m *Model) Cursor() int {
	return m.cursor
}

// Rows returns the current row snapshot.
func (m *Model) Rows() []types.Row {
	return m.rows
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.waitForChange(),
		func() tea.Msg {
			m.ctrl.Mount()
			return treeChangedMsg{}
		},
	)
}

// waitForChange blocks until the controller reports a state change.
func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return treeChangedMsg{}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case treeChangedMsg:
		m.rows = m.ctrl.Rows()
		m.clampCursor()
		return m, m.waitForChange()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()

	case "left", "h":
		// Collapse an open folder, otherwise jump to the parent row.
		if row, ok := m.currentRow(); ok {
			if row.Node.IsFolder() && row.Expanded {
				m.ctrl.Toggle(row.Node.ID)
				m.rows = m.ctrl.Rows()
				m.clampCursor()
			} else {
				m.moveToParent(row)
			}
		}

	case "right", "l", "enter", " ":
		if row, ok := m.currentRow(); ok && !row.IsPlaceholder() {
			m.ctrl.Select(row.Node.ID)
			m.rows = m.ctrl.Rows()
			m.clampCursor()
		}

	case "r":
		m.ctrl.Reset()
		m.rows = m.ctrl.Rows()
		m.cursor = 0
		m.offset = 0
	}

	return m, nil
}

func (m *Model) currentRow() (types.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return types.Row{}, false
	}
	return m.rows[m.cursor], true
}

// moveToParent places the cursor on the nearest preceding row with a
// smaller depth.
func (m *Model) moveToParent(row types.Row) {
	for i := m.cursor - 1; i >= 0; i-- {
		if m.rows[i].Depth < row.Depth {
			m.cursor = i
			m.ensureCursorVisible()
			return
		}
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// ensureCursorVisible adjusts the scroll offset so the cursor stays in
// the viewport.
func (m *Model) ensureCursorVisible() {
	visible := m.viewportHeight()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// viewportHeight is the number of tree rows that fit between the title
// and status lines.
func (m *Model) viewportHeight() int {
	return m.height - 4
}
