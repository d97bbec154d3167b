package commands

import (
	"context"
	"fmt"

	"naskah/internal/domain"
	"naskah/internal/ports"
	"naskah/internal/structurer"
)

// ChapterRow is one chapter in display order. PageNumber is the derived
// 1-based sequence number for body chapters and zero otherwise.
type ChapterRow struct {
	Chapter    domain.Chapter
	PageNumber int
}

// ListCommand reads the chapter list with derived page numbers
type ListCommand struct {
	store ports.ManuscriptStore
}

// NewListCommand creates a new ListCommand
func NewListCommand(store ports.ManuscriptStore) *ListCommand {
	return &ListCommand{store: store}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]ChapterRow, error) {
	chapters, err := c.store.Chapters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chapters: %w", err)
	}

	numbers := structurer.DerivePageNumbers(chapters)
	rows := make([]ChapterRow, 0, len(chapters))
	for _, ch := range chapters {
		rows = append(rows, ChapterRow{
			Chapter:    ch,
			PageNumber: numbers[ch.ID],
		})
	}
	return rows, nil
}
