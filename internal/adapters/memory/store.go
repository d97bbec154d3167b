// Package memory provides an in-memory ManuscriptStore, used by tests and as
// a scratch store when no library path is configured.
package memory

import (
	"context"
	"sync"

	"naskah/internal/domain"
	"naskah/internal/ports"
)

// Store keeps the chapter list in memory. A mutex serializes mutations so
// overlapping commands against the same list cannot interleave.
type Store struct {
	mu       sync.Mutex
	chapters []domain.Chapter
}

// Ensure Store implements ManuscriptStore
var _ ports.ManuscriptStore = (*Store)(nil)

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{}
}

// Chapters returns a copy of the stored list
func (s *Store) Chapters(ctx context.Context) ([]domain.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Chapter, len(s.chapters))
	copy(out, s.chapters)
	return out, nil
}

// AddChapter appends the chapter to the end of its structural segment
func (s *Store) AddChapter(ctx context.Context, ch domain.Chapter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	front, body, back := domain.SplitSegments(s.chapters)
	switch ch.Type {
	case domain.TypeFrontMatter:
		front = append(front, ch)
	case domain.TypeBackMatter:
		back = append(back, ch)
	default:
		body = append(body, ch)
	}

	next := make([]domain.Chapter, 0, len(front)+len(body)+len(back))
	next = append(next, front...)
	next = append(next, body...)
	next = append(next, back...)
	s.chapters = next
	return nil
}

// ReorderChapters replaces the stored list
func (s *Store) ReorderChapters(ctx context.Context, chapters []domain.Chapter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Chapter, len(chapters))
	copy(next, chapters)
	s.chapters = next
	return nil
}
