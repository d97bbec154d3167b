package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"naskah/internal/application/commands"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		removeCmd := commands.NewRemoveChapterCommand(GetStore(), args[0])
		result, err := removeCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
