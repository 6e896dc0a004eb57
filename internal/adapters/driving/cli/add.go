package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/captainfanatic/trolly/internal/core/domain"
)

var addStatus string

var addCmd = &cobra.Command{
	Use:   "add [label...]",
	Short: "Add an item to the shopping list",
	Long: `Adds an item to the shopping list. With no label the item is stored
under the configured untitled label.`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addStatus, "status", "", "initial status (on|done)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if err := openProvider(); err != nil {
		return err
	}

	var values domain.ItemValues
	if label := strings.TrimSpace(strings.Join(args, " ")); label != "" {
		values.Label = &label
	}
	if addStatus != "" {
		status, err := domain.ParseStatus(addStatus)
		if err != nil {
			return err
		}
		values.Status = &status
	}

	uri, err := provider.Insert(cmd.Context(), matcher.Collection().String(), values)
	if err != nil {
		return fmt.Errorf("adding item: %w", err)
	}

	cmd.Printf("Added item %d (%s)\n", uri.ID(), uri)
	return nil
}
