package commands

import (
	"context"
	"fmt"

	"naskah/internal/application"
	"naskah/internal/domain"
	"naskah/internal/ports"
	"naskah/internal/structurer"
)

// ReorderResult contains the result of a reorder
type ReorderResult struct {
	Chapters []domain.Chapter
	Message  string
}

// ReorderCommand applies a new ordering of existing chapter ids. The store
// is only touched if the full permutation is valid.
type ReorderCommand struct {
	store ports.ManuscriptStore
	IDs   []string
}

// NewReorderCommand creates a new ReorderCommand
func NewReorderCommand(store ports.ManuscriptStore, ids []string) *ReorderCommand {
	return &ReorderCommand{store: store, IDs: ids}
}

// Validate checks if the reorder operation is valid
func (c *ReorderCommand) Validate() error {
	if len(c.IDs) == 0 {
		return &application.ValidationError{
			Field:   "ids",
			Message: "at least one chapter id is required",
		}
	}
	return nil
}

// Execute runs the reorder command
func (c *ReorderCommand) Execute(ctx context.Context) (*ReorderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	current, err := c.store.Chapters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chapters: %w", err)
	}

	next, err := structurer.Reorder(current, c.IDs)
	if err != nil {
		return nil, err
	}

	if err := c.store.ReorderChapters(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save chapters: %w", err)
	}

	return &ReorderResult{
		Chapters: next,
		Message:  fmt.Sprintf("Reordered %d chapters", len(next)),
	}, nil
}
