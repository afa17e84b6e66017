package gui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"lazytree/pkg/types"
)

// The row renderer is a pure mapping from a controller row to its visual
// parts; it holds no state and performs no asynchronous work.

// RowIndent returns the leading whitespace for a row's nesting depth.
func RowIndent(depth int) string {
	return strings.Repeat("    ", depth)
}

// RowIcon chooses the icon for a row: a disclosure-style folder icon that
// reflects expansion, a plain file icon, or a refresh icon for loading
// placeholders.
func RowIcon(row types.Row) fyne.Resource {
	if row.IsPlaceholder() {
		return theme.ViewRefreshIcon()
	}
	if row.Node.IsFolder() {
		if row.Errored {
			return theme.ErrorIcon()
		}
		if row.Expanded {
			return theme.FolderOpenIcon()
		}
		return theme.FolderIcon()
	}
	return theme.FileIcon()
}

// RowName returns the display name for a row.
func RowName(row types.Row) string {
	if row.IsPlaceholder() {
		return "…"
	}
	return row.Node.Name
}

// RowStatus returns the inline status affordance for a row: the per-row
// error indicator, or a loading hint on placeholder rows.
func RowStatus(row types.Row) string {
	if row.IsPlaceholder() {
		return "loading"
	}
	if row.Errored {
		return "failed to load"
	}
	return ""
}
