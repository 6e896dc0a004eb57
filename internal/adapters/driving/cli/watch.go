package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/captainfanatic/trolly/internal/adapters/driven/notify"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print change notifications as they happen",
	Long: `Subscribes to change notifications and prints the affected URI for
every mutation, including writes made by other trolly processes.
Stops on Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := openProvider(); err != nil {
		return err
	}

	sub := bus.Subscribe(0)
	defer sub.Cancel()

	watcher, err := notify.NewWatcher(store.Path(), matcher, bus)
	if err != nil {
		return fmt.Errorf("watching database: %w", err)
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", matcher.Collection())
	for {
		select {
		case <-ctx.Done():
			return nil
		case uri, ok := <-sub.C():
			if !ok {
				return nil
			}
			cmd.Printf("changed: %s\n", uri)
		}
	}
}
