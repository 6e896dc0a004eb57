package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/captainfanatic/trolly/internal/core/domain"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single item",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the item as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := openProvider(); err != nil {
		return err
	}

	id, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	items, err := provider.Query(cmd.Context(), matcher.Item(id).String(), nil, "", nil, "")
	if err != nil {
		return fmt.Errorf("fetching item %d: %w", id, err)
	}
	if len(items) == 0 {
		return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}

	it := items[0]
	if showJSON {
		data, err := json.MarshalIndent(it, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal item: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Item:     %s\n", it.Label)
	cmd.Printf("ID:       %d\n", it.ID)
	cmd.Printf("Status:   %s\n", it.Status)
	cmd.Printf("Created:  %s\n", formatMillis(it.CreatedAt))
	cmd.Printf("Modified: %s\n", formatMillis(it.ModifiedAt))
	return nil
}

// formatMillis renders an epoch-milliseconds timestamp for display.
func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Format(time.RFC3339)
}
