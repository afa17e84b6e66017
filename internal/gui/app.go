// Package gui provides the Fyne desktop front end for the lazy-loading
// file browser.
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"lazytree/internal/config"
	"lazytree/internal/log"
	"lazytree/internal/tree"
	"lazytree/pkg/types"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	ctrl       *tree.Controller
	browser    *Browser
}

// NewApp creates a new GUI application browsing the given root node
func NewApp(cfg *config.Config, root types.Node) *App {
	fyneApp := app.NewWithID("io.github.lazytree")

	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
	}

	a.ctrl = tree.New(root,
		tree.WithPlaceholderRows(cfg.Display.PlaceholderRows),
		tree.WithOnChange(func() {
			// Loader completions arrive on their own goroutines; hop to
			// the Fyne main thread before touching widgets.
			fyne.Do(func() {
				if a.browser != nil {
					a.browser.Reload()
				}
			})
		}),
	)

	a.mainWindow = a.fyneApp.NewWindow("Lazytree")
	return a
}

// Controller exposes the tree controller, mainly for tests
func (a *App) Controller() *tree.Controller {
	return a.ctrl
}

// GetMainWindow returns the main window for testing purposes
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run starts the GUI application
func (a *App) Run() {
	a.setupMainWindow()
	a.ctrl.Mount()
	a.mainWindow.Show()
	a.fyneApp.Run()
}

// setupMainWindow sets up the main window content
func (a *App) setupMainWindow() {
	a.browser = NewBrowser(a.ctrl)

	a.mainWindow.Resize(fyne.NewSize(float32(a.cfg.Display.Width), float32(a.cfg.Display.Height)))
	a.mainWindow.SetContent(a.browser.Build())

	a.mainWindow.Canvas().SetOnTypedKey(func(ke *fyne.KeyEvent) {
		switch ke.Name {
		case fyne.KeyQ:
			a.fyneApp.Quit()
		case fyne.KeyR:
			a.ctrl.Reset()
		}
	})
}

// ShowError displays an error message
func (a *App) ShowError(message string, err error) {
	log.Errorf("%s: %v", message, err)
	dialog.ShowError(fmt.Errorf("%s: %w", message, err), a.mainWindow)
}

// ShowInfo displays an information message
func (a *App) ShowInfo(message string) {
	log.Info(message)
	dialog.ShowInformation("Info", message, a.mainWindow)
}
