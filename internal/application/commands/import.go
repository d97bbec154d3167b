package commands

import (
	"context"
	"fmt"
	"log/slog"

	"naskah/internal/application"
	"naskah/internal/domain"
	"naskah/internal/importer"
	"naskah/internal/ports"
	"naskah/internal/structurer"
)

// ImportResult contains the result of an import batch
type ImportResult struct {
	Created  int
	Skipped  int
	Chapters []domain.Chapter
	Message  string
}

// ImportCommand ingests a batch of files from a source and merges the
// resulting chapters into the store
type ImportCommand struct {
	store  ports.ManuscriptStore
	source ports.FileSource
	ids    ports.IDGenerator
	Logger *slog.Logger
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(store ports.ManuscriptStore, source ports.FileSource, ids ports.IDGenerator) *ImportCommand {
	return &ImportCommand{
		store:  store,
		source: source,
		ids:    ids,
	}
}

// Validate checks if the import operation is valid
func (c *ImportCommand) Validate() error {
	if c.store == nil {
		return &application.ValidationError{Field: "store", Message: "store is required"}
	}
	if c.source == nil {
		return &application.ValidationError{Field: "source", Message: "file source is required"}
	}
	if c.ids == nil {
		return &application.ValidationError{Field: "ids", Message: "id generator is required"}
	}
	return nil
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context) (*ImportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	files, err := c.source.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	res, err := importer.Import(ctx, importer.Request{Files: files, Logger: c.Logger})
	if err != nil {
		return nil, err
	}

	current, err := c.store.Chapters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chapters: %w", err)
	}

	next := structurer.Append(current, res.Created, c.ids.NewID)
	if err := c.store.ReorderChapters(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save chapters: %w", err)
	}

	return &ImportResult{
		Created:  len(res.Created),
		Skipped:  res.Skipped,
		Chapters: next,
		Message:  fmt.Sprintf("Imported %d chapters (%d files skipped)", len(res.Created), res.Skipped),
	}, nil
}
