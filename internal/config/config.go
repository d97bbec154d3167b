package config

import "os"

const DefaultLibraryPath = "~/Documents/naskah/manuscript.db"

// LibraryPath returns the manuscript database path from the NASKAH_LIBRARY
// env var, falling back to DefaultLibraryPath.
func LibraryPath() string {
	if env := os.Getenv("NASKAH_LIBRARY"); env != "" {
		return env
	}
	return DefaultLibraryPath
}
