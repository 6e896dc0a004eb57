package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/captainfanatic/trolly/internal/core/domain"
)

var (
	setLabel      string
	setStatusFlag string
)

var setCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update an item's columns",
	Args:  cobra.ExactArgs(1),
	RunE:  runSet,
}

func init() {
	setCmd.Flags().StringVar(&setLabel, "item", "", "new label")
	setCmd.Flags().StringVar(&setStatusFlag, "status", "", "new status (on|done)")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	if err := openProvider(); err != nil {
		return err
	}

	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	var values domain.ItemValues
	if cmd.Flags().Changed("item") {
		values.Label = &setLabel
	}
	if cmd.Flags().Changed("status") {
		status, err := domain.ParseStatus(setStatusFlag)
		if err != nil {
			return err
		}
		values.Status = &status
	}
	if values.IsEmpty() {
		return fmt.Errorf("%w: nothing to set", domain.ErrInvalidInput)
	}

	count, err := provider.Update(cmd.Context(), matcher.Item(id).String(), values, "", nil)
	if err != nil {
		return fmt.Errorf("updating item %d: %w", id, err)
	}
	if count == 0 {
		cmd.Printf("No item with id %d.\n", id)
		return nil
	}

	cmd.Printf("Updated item %d.\n", id)
	return nil
}
