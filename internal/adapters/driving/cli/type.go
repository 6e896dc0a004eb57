package cli

import (
	"github.com/spf13/cobra"
)

var typeCmd = &cobra.Command{
	Use:   "type <uri>",
	Short: "Print the content type of a URI",
	Args:  cobra.ExactArgs(1),
	RunE:  runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
}

func runType(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	label, err := matcher.Type(args[0])
	if err != nil {
		return err
	}

	cmd.Println(label)
	return nil
}
