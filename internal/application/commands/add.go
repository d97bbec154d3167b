package commands

import (
	"context"
	"fmt"

	"naskah/internal/application"
	"naskah/internal/domain"
	"naskah/internal/ports"
	"naskah/internal/structurer"
)

// AddChapterResult contains the result of adding an empty chapter
type AddChapterResult struct {
	Chapter domain.Chapter
	Message string
}

// AddChapterCommand creates an empty chapter of a chosen type and inserts it
// at the end of its structural segment
type AddChapterCommand struct {
	store ports.ManuscriptStore
	ids   ports.IDGenerator
	Title string
	Type  domain.ChapterType
}

// NewAddChapterCommand creates a new AddChapterCommand
func NewAddChapterCommand(store ports.ManuscriptStore, ids ports.IDGenerator, title string, chapterType domain.ChapterType) *AddChapterCommand {
	return &AddChapterCommand{
		store: store,
		ids:   ids,
		Title: title,
		Type:  chapterType,
	}
}

// Validate checks if the add operation is valid
func (c *AddChapterCommand) Validate() error {
	if c.Title == "" {
		return &application.ValidationError{
			Field:   "title",
			Message: "title is required",
		}
	}
	if !c.Type.Valid() {
		return &application.ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("invalid chapter type: %s", c.Type),
		}
	}
	return nil
}

// Execute runs the add chapter command
func (c *AddChapterCommand) Execute(ctx context.Context) (*AddChapterResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ch := structurer.Materialize(domain.CreationRequest{
		Title: c.Title,
		Type:  c.Type,
	}, c.ids.NewID)

	if err := c.store.AddChapter(ctx, ch); err != nil {
		return nil, fmt.Errorf("failed to add chapter: %w", err)
	}

	return &AddChapterResult{
		Chapter: ch,
		Message: fmt.Sprintf("Added %s: %s", ch.Type.Label(), ch.Title),
	}, nil
}
