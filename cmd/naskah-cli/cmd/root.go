package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"naskah/internal/adapters/idgen"
	"naskah/internal/adapters/sqlite"
	"naskah/internal/config"
	"naskah/internal/ports"
)

var (
	libraryPath string
	store       *sqlite.Store
	ids         ports.IDGenerator
)

var rootCmd = &cobra.Command{
	Use:   "naskah-cli",
	Short: "CLI for structuring book manuscripts",
	Long: `naskah-cli manages the chapter structure of a book manuscript.

It imports upload directories that follow the manuscript naming convention
(chapter folders "BAB <n> - <title>" with sub-chapter files
"<n>.<m> <title>.txt", plus front and back matter files detected by name),
and provides commands to list, add, reorder, and remove chapters. Front
matter always precedes body chapters, which always precede back matter.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		store, err = sqlite.Open(libraryPath)
		if err != nil {
			return err
		}
		ids = idgen.NewGenerator()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&libraryPath, "library", "l", config.LibraryPath(), "path to the manuscript database")
}

// GetStore returns the initialized store
func GetStore() ports.ManuscriptStore {
	return store
}

// GetIDs returns the initialized id generator
func GetIDs() ports.IDGenerator {
	return ids
}
