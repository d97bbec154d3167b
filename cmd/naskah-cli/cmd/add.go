package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"naskah/internal/application"
	"naskah/internal/application/commands"
)

var addType string

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an empty chapter",
	Long: `Add an empty chapter of the chosen structural type.

The chapter is inserted at the end of its segment: front matter before all
body chapters, back matter after everything.

Examples:
  naskah-cli add "Bab Baru"
  naskah-cli add --type frontmatter "Kata Pengantar"
  naskah-cli add --type backmatter "Penutup"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		chapterType, err := application.ParseChapterType(addType)
		if err != nil {
			return err
		}

		addCmd := commands.NewAddChapterCommand(GetStore(), GetIDs(), args[0], chapterType)
		result, err := addCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("%s (id %s)\n", result.Message, result.Chapter.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", string(application.TypeChapter), "chapter type: frontmatter, chapter, or backmatter")
	rootCmd.AddCommand(addCmd)
}
