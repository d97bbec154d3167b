// Package filesystem provides a FileSource over a local directory tree.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"naskah/internal/ports"
)

// Source walks an upload root and yields its files. Paths are reported
// relative to the root's parent so the root folder name is segment zero,
// matching how browser directory uploads address files.
type Source struct {
	root string
}

// Ensure Source implements FileSource
var _ ports.FileSource = (*Source)(nil)

// NewSource creates a file source rooted at the given directory
func NewSource(root string) *Source {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	return &Source{root: filepath.Clean(root)}
}

// Files lists every regular file beneath the root
func (s *Source) Files(ctx context.Context) ([]ports.FileEntry, error) {
	base := filepath.Dir(s.root)

	var entries []ports.FileEntry
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(base, p)
		if err != nil {
			return err
		}
		entries = append(entries, &entry{path: p, rel: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", s.root, err)
	}
	return entries, nil
}

type entry struct {
	path string
	rel  string
}

func (e *entry) RelativePath() string {
	return e.rel
}

func (e *entry) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(e.path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
