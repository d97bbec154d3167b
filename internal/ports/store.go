package ports

import (
	"context"

	"naskah/internal/domain"
)

// ManuscriptStore owns the ordered chapter list. Implementations must
// serialize mutations so overlapping commands against the same list cannot
// interleave; every method is atomic from the caller's point of view.
type ManuscriptStore interface {
	// Chapters returns the full list in storage order.
	Chapters(ctx context.Context) ([]domain.Chapter, error)

	// AddChapter inserts one chapter at the end of its structural segment.
	AddChapter(ctx context.Context, ch domain.Chapter) error

	// ReorderChapters replaces the stored list with the given one.
	ReorderChapters(ctx context.Context, chapters []domain.Chapter) error
}
