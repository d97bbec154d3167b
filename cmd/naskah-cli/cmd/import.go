package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"naskah/internal/adapters/filesystem"
	"naskah/internal/application/commands"
)

var importCmd = &cobra.Command{
	Use:   "import <directory>",
	Short: "Import an upload directory of manuscript files",
	Long: `Import a directory of manuscript files into the chapter list.

Chapter folders must be named "BAB <n> - <title>" and hold sub-chapter
files named "<n>.<m> <title>.txt". A file whose name contains
"Kata Pengantar" becomes the front matter; one containing "Penutup"
becomes the back matter. Files that match no pattern are skipped.

Examples:
  naskah-cli import ./naskah-baru
  naskah-cli import ~/Documents/draft`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		source := filesystem.NewSource(args[0])

		importCmd := commands.NewImportCommand(GetStore(), source, GetIDs())
		result, err := importCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
