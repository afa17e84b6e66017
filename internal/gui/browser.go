package gui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"lazytree/internal/tree"
	"lazytree/pkg/types"
)

// Browser renders the controller's flattened rows as a list. It holds a
// snapshot of the rows; all tree state lives in the controller.
type Browser struct {
	ctrl *tree.Controller

	mu   sync.RWMutex
	rows []types.Row

	list        *widget.List
	statusLabel *widget.Label
	loadingBar  *widget.ProgressBarInfinite
}

// NewBrowser creates a browser bound to the controller
func NewBrowser(ctrl *tree.Controller) *Browser {
	return &Browser{ctrl: ctrl}
}

// Build creates the browser UI
func (b *Browser) Build() fyne.CanvasObject {
	b.statusLabel = widget.NewLabel("")
	b.loadingBar = widget.NewProgressBarInfinite()
	b.loadingBar.Hide()

	b.list = widget.NewList(
		func() int {
			return len(b.snapshot())
		},
		func() fyne.CanvasObject {
			// Template for each row: indent, icon, name, status, size
			return container.NewHBox(
				widget.NewLabel(""),
				widget.NewIcon(theme.FileIcon()),
				widget.NewLabel("template name"),
				widget.NewLabel(""),
				layout.NewSpacer(),
				widget.NewLabel(""),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			rows := b.snapshot()
			if id < 0 || id >= len(rows) {
				return
			}
			row := rows[id]
			hbox := obj.(*fyne.Container)
			indentLabel := hbox.Objects[0].(*widget.Label)
			icon := hbox.Objects[1].(*widget.Icon)
			nameLabel := hbox.Objects[2].(*widget.Label)
			statusLabel := hbox.Objects[3].(*widget.Label)
			sizeLabel := hbox.Objects[5].(*widget.Label)

			indentLabel.SetText(RowIndent(row.Depth))
			icon.SetResource(RowIcon(row))
			nameLabel.SetText(RowName(row))
			nameLabel.TextStyle = fyne.TextStyle{Bold: row.Selected}
			statusLabel.SetText(RowStatus(row))
			sizeLabel.SetText(row.Node.SizeLabel())
		},
	)

	b.list.OnSelected = func(id widget.ListItemID) {
		rows := b.snapshot()
		if id < 0 || id >= len(rows) {
			return
		}
		row := rows[id]
		// The controller owns selection; the list highlight is transient.
		b.list.UnselectAll()
		if row.IsPlaceholder() {
			return
		}
		b.ctrl.Select(row.Node.ID)
	}

	header := container.NewBorder(
		nil, nil,
		widget.NewLabelWithStyle("Files", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		b.statusLabel,
		b.loadingBar,
	)

	b.Reload()

	return container.NewBorder(
		header, // Top
		nil,    // Bottom
		nil,    // Left
		nil,    // Right
		b.list,
	)
}

// Reload re-snapshots the controller's rows and refreshes the list.
// Must be called on the Fyne main thread.
func (b *Browser) Reload() {
	rows := b.ctrl.Rows()
	b.mu.Lock()
	b.rows = rows
	b.mu.Unlock()

	if b.list != nil {
		b.list.Refresh()
	}
	if b.loadingBar != nil {
		if b.ctrl.InitialLoading() {
			b.loadingBar.Show()
			b.statusLabel.SetText("Loading…")
		} else {
			b.loadingBar.Hide()
			b.statusLabel.SetText("")
		}
	}
}

// Rows returns the currently rendered row snapshot, for tests
func (b *Browser) Rows() []types.Row {
	return b.snapshot()
}

func (b *Browser) snapshot() []types.Row {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rows
}
