package gui_test

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazytree/internal/config"
	"lazytree/internal/gui"
	"lazytree/internal/tree"
	"lazytree/pkg/types"
)

func staticRoot() types.Node {
	return types.NewFolder("root", "root",
		types.NewFolder("docs", "docs",
			types.NewFile("docs/readme", "readme.md", 4),
		),
		types.NewFile("notes", "notes.txt", 2),
	)
}

func TestNewApp(t *testing.T) {
	cfg := config.New()

	app := gui.NewApp(cfg, staticRoot())

	// Verify that the app was created successfully
	assert.NotNil(t, app, "NewApp should return a non-nil app")
	assert.NotNil(t, app.Controller(), "App should have a tree controller")
	assert.NotNil(t, app.GetMainWindow(), "App should have a main window")
}

func TestGetMainWindow(t *testing.T) {
	cfg := config.New()
	app := gui.NewApp(cfg, staticRoot())

	window := app.GetMainWindow()
	assert.NotNil(t, window, "GetMainWindow should return a non-nil window")
	assert.Equal(t, "Lazytree", window.Title())
}

func TestBrowserRendersStaticTree(t *testing.T) {
	ctrl := tree.New(staticRoot())
	browser := gui.NewBrowser(ctrl)

	w := test.NewTempWindow(t, browser.Build())
	require.NotNil(t, w)

	rows := browser.Rows()
	require.Len(t, rows, 1, "a root without a loader starts collapsed")
	assert.Equal(t, "root", rows[0].Node.ID)

	ctrl.Toggle("root")
	browser.Reload()

	rows = browser.Rows()
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Expanded)
	assert.Equal(t, "docs", rows[1].Node.ID)
	assert.Equal(t, "notes", rows[2].Node.ID)
}

func TestBrowserReloadAfterToggle(t *testing.T) {
	ctrl := tree.New(staticRoot())
	browser := gui.NewBrowser(ctrl)
	test.NewTempWindow(t, browser.Build())

	ctrl.Toggle("root")
	ctrl.Toggle("docs")
	browser.Reload()

	rows := browser.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, "docs/readme", rows[2].Node.ID)
	assert.Equal(t, 2, rows[2].Depth)

	ctrl.Toggle("docs")
	browser.Reload()
	assert.Len(t, browser.Rows(), 3)
}

func TestBrowserShowsPlaceholdersWhileLoading(t *testing.T) {
	gate := make(chan struct{})
	root := types.NewLazyFolder("root", "root", func(ctx context.Context) ([]types.Node, error) {
		<-gate
		return []types.Node{types.NewFile("a", "a.txt", 1)}, nil
	})

	ctrl := tree.New(root, tree.WithPlaceholderRows(2))
	browser := gui.NewBrowser(ctrl)
	test.NewTempWindow(t, browser.Build())

	ctrl.Mount()
	browser.Reload()

	rows := browser.Rows()
	require.Len(t, rows, 3, "root row plus two placeholders")
	assert.True(t, rows[1].IsPlaceholder())
	assert.True(t, rows[2].IsPlaceholder())

	close(gate)
}
