package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/captainfanatic/trolly/internal/core/domain"
)

var (
	listJSON bool
	listDone bool
	listTodo bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List shopping list items",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output items as JSON")
	listCmd.Flags().BoolVar(&listDone, "done", false, "only items crossed off")
	listCmd.Flags().BoolVar(&listTodo, "todo", false, "only items still to buy")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := openProvider(); err != nil {
		return err
	}

	selection, args := statusFilter(listDone, listTodo)
	items, err := provider.Query(cmd.Context(), matcher.Collection().String(), nil, selection, args, "")
	if err != nil {
		return fmt.Errorf("listing items: %w", err)
	}

	if listJSON {
		return outputItemsJSON(cmd, items)
	}
	return outputItemsTable(cmd, items)
}

// statusFilter builds the selection for the --done/--todo flags.
// Both or neither means no filter.
func statusFilter(done, todo bool) (string, []any) {
	switch {
	case done && !todo:
		return domain.ColStatus + " = ?", []any{int(domain.StatusOffList)}
	case todo && !done:
		return domain.ColStatus + " = ?", []any{int(domain.StatusOnList)}
	default:
		return "", nil
	}
}

func outputItemsJSON(cmd *cobra.Command, items []domain.Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputItemsTable(cmd *cobra.Command, items []domain.Item) error {
	if len(items) == 0 {
		cmd.Println("Shopping list is empty.")
		return nil
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	for _, it := range items {
		cmd.Println(renderItemLine(it, styled))
	}
	return nil
}

var (
	doneLineStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// renderItemLine formats one item as "[ ] 3 Milk", styling crossed-off
// items when the output is a terminal.
func renderItemLine(it domain.Item, styled bool) string {
	box := "[ ]"
	label := it.Label
	if it.Status == domain.StatusOffList {
		box = "[x]"
		if styled {
			box = checkedStyle.Render(box)
			label = doneLineStyle.Render(label)
		}
	}
	return fmt.Sprintf("%s %3d  %s", box, it.ID, label)
}
