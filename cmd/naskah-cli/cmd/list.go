package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"naskah/internal/application/commands"
	"naskah/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List chapters in manuscript order",
	Long: `List all chapters in manuscript order.

Body chapters show their derived chapter number; front and back matter
never consume a number.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		rows, err := commands.NewListCommand(GetStore()).Execute(ctx)
		if err != nil {
			return err
		}

		for _, row := range rows {
			ch := row.Chapter
			label := ch.Type.Label()
			if ch.Type == domain.TypeChapter {
				label = fmt.Sprintf("Chapter %d", row.PageNumber)
			}
			fmt.Printf("%s  %-14s %s", ch.ID, label, ch.Title)
			if n := len(ch.SubChapters); n > 0 {
				fmt.Printf("  (%d sub-chapters)", n)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
