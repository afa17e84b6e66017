package tui

import (
	"path/filepath"
	"strings"

	"lazytree/pkg/types"
)

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("lazytree") + "\n")

	if len(m.rows) == 0 {
		b.WriteString(m.styles.Placeholder.Render("no entries") + "\n")
	} else {
		start := m.offset
		end := min(len(m.rows), m.offset+m.viewportHeight())
		for i := start; i < end; i++ {
			b.WriteString(m.renderRow(i) + "\n")
		}
	}

	b.WriteString(m.statusLine() + "\n")
	b.WriteString(m.styles.Help.Render("↑/↓ move · enter toggle/select · ← collapse · r reset · q quit"))
	return b.String()
}

func (m *Model) renderRow(i int) string {
	row := m.rows[i]
	indent := strings.Repeat("  ", row.Depth)

	marker := "  "
	if i == m.cursor {
		marker = "▶ "
	}

	if row.IsPlaceholder() {
		line := indent + marker + m.spinner.View() + " …"
		return m.styles.Placeholder.Render(line)
	}

	label := rowIcon(row) + row.Node.Name
	if size := row.Node.SizeLabel(); size != "" {
		label += "  " + m.styles.Status.Render(size)
	}
	if row.Errored {
		label += "  " + m.styles.Error.Render("⚠ failed to load")
	}

	line := indent + marker + label
	switch {
	case i == m.cursor:
		return m.styles.Cursor.Render(line)
	case row.Selected:
		return m.styles.Selected.Render(line)
	case row.Node.IsFolder():
		return m.styles.Folder.Render(line)
	default:
		return m.styles.File.Render(line)
	}
}

func rowIcon(row types.Row) string {
	if row.Node.IsFolder() {
		if row.Expanded {
			return "📂 "
		}
		return "📁 "
	}
	switch filepath.Ext(strings.ToLower(row.Node.Name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return "🖼️ "
	case ".mp3", ".wav", ".flac", ".ogg":
		return "🎵 "
	case ".pdf":
		return "📕 "
	case ".txt", ".md", ".go":
		return "📝 "
	default:
		return "📄 "
	}
}

func (m *Model) statusLine() string {
	if m.ctrl.InitialLoading() {
		return m.styles.Status.Render(m.spinner.View() + " loading…")
	}
	if id := m.ctrl.SelectedID(); id != "" {
		if n, ok := m.ctrl.Node(id); ok {
			return m.styles.Status.Render("selected: " + n.Name)
		}
	}
	return m.styles.Status.Render("")
}
