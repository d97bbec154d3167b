package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"naskah/internal/application/commands"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder <id> [id...]",
	Short: "Reorder the chapter list",
	Long: `Reorder the chapter list by giving every chapter id in the new order.

The id list must be a permutation of the current list: a missing, duplicate,
or unknown id rejects the whole reorder and leaves the list unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		reorderCmd := commands.NewReorderCommand(GetStore(), args)
		result, err := reorderCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reorderCmd)
}
