package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/captainfanatic/trolly/internal/core/domain"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Cross an item off the list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(cmd, args[0], domain.StatusOffList)
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Put a crossed-off item back on the list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setStatus(cmd, args[0], domain.StatusOnList)
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(restoreCmd)
}

// setStatus updates a single item's status column.
func setStatus(cmd *cobra.Command, idArg string, status domain.Status) error {
	if err := openProvider(); err != nil {
		return err
	}

	id, err := parseItemID(idArg)
	if err != nil {
		return err
	}

	values := domain.ItemValues{Status: &status}
	count, err := provider.Update(cmd.Context(), matcher.Item(id).String(), values, "", nil)
	if err != nil {
		return fmt.Errorf("updating item %d: %w", id, err)
	}
	if count == 0 {
		cmd.Printf("No item with id %d.\n", id)
		return nil
	}

	cmd.Printf("Item %d is now %s.\n", id, status)
	return nil
}
