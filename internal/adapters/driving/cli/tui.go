package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/captainfanatic/trolly/internal/adapters/driven/notify"
	"github.com/captainfanatic/trolly/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the shopping list interactively",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	if err := openProvider(); err != nil {
		return err
	}

	sub := bus.Subscribe(0)
	defer sub.Cancel()

	// External writes refresh the view too.
	watcher, err := notify.NewWatcher(store.Path(), matcher, bus)
	if err != nil {
		return fmt.Errorf("watching database: %w", err)
	}
	defer watcher.Close()

	app := tui.NewApp(provider, matcher, sub.C())
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
