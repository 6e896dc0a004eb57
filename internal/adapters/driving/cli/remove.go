package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/captainfanatic/trolly/internal/core/domain"
)

var (
	removeDone bool
	removeAll  bool
)

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove items from the list",
	Long: `Removes a single item by id, every crossed-off item (--done), or the
whole list (--all).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&removeDone, "done", false, "remove all crossed-off items")
	removeCmd.Flags().BoolVar(&removeAll, "all", false, "remove every item")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if err := openProvider(); err != nil {
		return err
	}

	targets := 0
	if len(args) == 1 {
		targets++
	}
	if removeDone {
		targets++
	}
	if removeAll {
		targets++
	}
	if targets != 1 {
		return fmt.Errorf("%w: give exactly one of an id, --done or --all", domain.ErrInvalidInput)
	}

	var (
		uri       string
		selection string
		selArgs   []any
	)
	switch {
	case len(args) == 1:
		id, err := parseItemID(args[0])
		if err != nil {
			return err
		}
		uri = matcher.Item(id).String()
	case removeDone:
		uri = matcher.Collection().String()
		selection = domain.ColStatus + " = ?"
		selArgs = []any{int(domain.StatusOffList)}
	default:
		uri = matcher.Collection().String()
	}

	count, err := provider.Delete(cmd.Context(), uri, selection, selArgs)
	if err != nil {
		return fmt.Errorf("removing items: %w", err)
	}

	cmd.Printf("Removed %d item(s).\n", count)
	return nil
}
