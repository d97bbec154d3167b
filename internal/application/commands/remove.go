package commands

import (
	"context"
	"fmt"

	"naskah/internal/application"
	"naskah/internal/domain"
	"naskah/internal/ports"
)

// RemoveChapterResult contains the result of removing a chapter
type RemoveChapterResult struct {
	Removed domain.Chapter
	Message string
}

// RemoveChapterCommand removes a chapter by id
type RemoveChapterCommand struct {
	store ports.ManuscriptStore
	ID    string
}

// NewRemoveChapterCommand creates a new RemoveChapterCommand
func NewRemoveChapterCommand(store ports.ManuscriptStore, id string) *RemoveChapterCommand {
	return &RemoveChapterCommand{store: store, ID: id}
}

// Validate checks if the remove operation is valid
func (c *RemoveChapterCommand) Validate() error {
	if c.ID == "" {
		return &application.ValidationError{
			Field:   "id",
			Message: "chapter id is required",
		}
	}
	return nil
}

// Execute runs the remove chapter command
func (c *RemoveChapterCommand) Execute(ctx context.Context) (*RemoveChapterResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	chapters, err := c.store.Chapters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chapters: %w", err)
	}

	var removed *domain.Chapter
	next := make([]domain.Chapter, 0, len(chapters))
	for _, ch := range chapters {
		if ch.ID == c.ID {
			removed = &ch
			continue
		}
		next = append(next, ch)
	}
	if removed == nil {
		return nil, fmt.Errorf("chapter %s: %w", c.ID, application.ErrNotFound)
	}

	if err := c.store.ReorderChapters(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save chapters: %w", err)
	}

	return &RemoveChapterResult{
		Removed: *removed,
		Message: fmt.Sprintf("Removed %s: %s", removed.Type.Label(), removed.Title),
	}, nil
}
