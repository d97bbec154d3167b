package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"naskah/internal/adapters/idgen"
	"naskah/internal/adapters/sqlite"
	"naskah/internal/adapters/tui"
	"naskah/internal/config"
)

func main() {
	store, err := sqlite.Open(config.LibraryPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	app := tui.NewApp(store, idgen.NewGenerator())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
