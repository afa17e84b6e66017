package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lazytree/internal/config"
	"lazytree/internal/gui"
	"lazytree/internal/log"
	"lazytree/internal/source"
	"lazytree/internal/tree"
	"lazytree/internal/tui"
	"lazytree/pkg/types"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	var configPath string
	var debug bool

	rootCmd := &cobra.Command{
		Use:     "lazytree",
		Short:   "A lazy-loading file browser",
		Long:    `Lazytree browses folder hierarchies, fetching each folder's contents on demand the first time it is opened.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(debug)
		},
		// No Run function here - default behavior is to show help
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(guiCmd(&configPath))
	rootCmd.AddCommand(tuiCmd(&configPath))
	rootCmd.AddCommand(themesCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig loads the config from the given path, falling back to the
// default location and then to built-in defaults.
func loadConfig(path string) *config.Config {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadConfigFile(path)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Printf("Warning: Could not load config: %v. Using default settings.\n", err)
		cfg = config.New()
	}
	return cfg
}

// buildRoot resolves the browsed tree from the flags: the built-in demo
// tree when --fake is set, otherwise a lazy view over a real directory.
func buildRoot(cfg *config.Config, dir string, fake bool) (types.Node, *source.DirSource, error) {
	if fake {
		fs := source.NewFakeSource(time.Duration(cfg.FakeSource.DelayMS) * time.Millisecond)
		root := source.DemoTree(fs)
		for _, id := range cfg.FakeSource.FailIDs {
			fs.FailFor(id)
		}
		return root, nil, nil
	}

	if dir == "" {
		dir = cfg.Browser.Root
	}
	opts := []source.DirOption{source.WithHidden(cfg.Browser.ShowHidden)}
	ignore, err := source.WithIgnoreGlobs(cfg.Browser.Ignore)
	if err != nil {
		return types.Node{}, nil, err
	}
	opts = append(opts, ignore)

	ds, err := source.NewDirSource(dir, opts...)
	if err != nil {
		return types.Node{}, nil, err
	}
	return ds.Tree(), ds, nil
}

// startWatch wires a filesystem watcher that invalidates folders whose
// contents change on disk. Returns nil when watching is disabled or the
// tree is not backed by a real directory.
func startWatch(cfg *config.Config, ds *source.DirSource, ctrl *tree.Controller) *source.Refresher {
	if !cfg.Browser.Watch || ds == nil {
		return nil
	}
	r, err := source.NewRefresher(ctrl)
	if err != nil {
		log.Warnf("watch disabled: %v", err)
		return nil
	}
	if err := r.Watch(ds.Root()); err != nil {
		log.Warnf("watch disabled: %v", err)
		return nil
	}
	if err := r.Start(); err != nil {
		log.Warnf("watch disabled: %v", err)
		return nil
	}
	return r
}

// guiCmd creates the GUI command for the CLI
func guiCmd(configPath *string) *cobra.Command {
	var dir string
	var fake bool

	cmd := &cobra.Command{
		Use:   "gui [directory]",
		Short: "Launch the graphical file browser",
		Long:  `Launch the GUI version of lazytree for a visual view of the folder tree.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(*configPath)
			if dir == "" && len(args) > 0 {
				dir = args[0]
			}

			root, ds, err := buildRoot(cfg, dir, fake)
			if err != nil {
				return fmt.Errorf("error resolving browse root: %w", err)
			}

			app := gui.NewApp(cfg, root)
			if r := startWatch(cfg, ds, app.Controller()); r != nil {
				defer r.Stop()
			}
			app.Run()
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to browse")
	cmd.Flags().BoolVar(&fake, "fake", false, "browse the built-in demo tree with simulated latency")

	return cmd
}

// tuiCmd represents the TUI command
func tuiCmd(configPath *string) *cobra.Command {
	var dir string
	var fake bool

	cmd := &cobra.Command{
		Use:   "tui [directory]",
		Short: "Start the terminal file browser",
		Long:  `Start the terminal user interface for browsing the folder tree.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(*configPath)
			if dir == "" && len(args) > 0 {
				dir = args[0]
			}

			root, ds, err := buildRoot(cfg, dir, fake)
			if err != nil {
				return fmt.Errorf("error resolving browse root: %w", err)
			}

			m := tui.New(cfg, root)
			if r := startWatch(cfg, ds, m.Controller()); r != nil {
				defer r.Stop()
			}

			// No alt screen for better compatibility in non-TTY environments
			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to browse")
	cmd.Flags().BoolVar(&fake, "fake", false, "browse the built-in demo tree with simulated latency")

	return cmd
}

// versionCmd prints the build version
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("lazytree " + version)
		},
	}
}

// themesCmd lists the available color themes
func themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListThemes() {
				fmt.Println(name)
			}
		},
	}
}
