// Package structurer maintains the ordered chapter list: it materializes
// creation requests into chapters, enforces the segment ordering (front
// matter, body, back matter), applies user-supplied reorderings, and derives
// the sequential numbering of body chapters.
package structurer

import (
	"errors"
	"fmt"

	"naskah/internal/domain"
)

// ErrInvalidReorder indicates the supplied id sequence is not a permutation
// of the current chapter list
var ErrInvalidReorder = errors.New("invalid reorder")

// ReorderError reports why a reorder was rejected. The chapter list is left
// untouched when one is returned.
type ReorderError struct {
	ID     string
	Reason string
}

func (e *ReorderError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid reorder: %s", e.Reason)
	}
	return fmt.Sprintf("invalid reorder: %s: %s", e.Reason, e.ID)
}

func (e *ReorderError) Is(target error) bool {
	return target == ErrInvalidReorder
}

// Materialize turns a creation request into a Chapter with fresh ids and
// default presentation attributes. newID is called once for the chapter and
// once per sub-chapter.
func Materialize(req domain.CreationRequest, newID func() string) domain.Chapter {
	ch := domain.Chapter{
		ID:          newID(),
		Title:       req.Title,
		Content:     req.Content,
		Images:      []string{},
		Type:        req.Type,
		Indentation: domain.DefaultIndentation,
		LineSpacing: domain.DefaultLineSpacing,
	}
	for _, sub := range req.SubChapters {
		ch.SubChapters = append(ch.SubChapters, domain.SubChapter{
			ID:      newID(),
			Title:   sub.Title,
			Content: sub.Content,
		})
	}
	return ch
}

// Append materializes each request and inserts it into current such that
// every front matter chapter precedes every body chapter, which precedes
// every back matter chapter. New chapters land at the end of their segment;
// relative order of requests within a segment is preserved. The input slice
// is not modified.
func Append(current []domain.Chapter, created []domain.CreationRequest, newID func() string) []domain.Chapter {
	front, body, back := domain.SplitSegments(current)

	for _, req := range created {
		ch := Materialize(req, newID)
		switch ch.Type {
		case domain.TypeFrontMatter:
			front = append(front, ch)
		case domain.TypeBackMatter:
			back = append(back, ch)
		default:
			body = append(body, ch)
		}
	}

	out := make([]domain.Chapter, 0, len(front)+len(body)+len(back))
	out = append(out, front...)
	out = append(out, body...)
	out = append(out, back...)
	return out
}

// Reorder produces the chapter list in exactly the given id order. It fails
// with a ReorderError if order is not a permutation of the current list's id
// set. Any permutation is accepted, including cross-segment moves; display
// numbering is derived separately and stays correct regardless of storage
// order.
func Reorder(current []domain.Chapter, order []string) ([]domain.Chapter, error) {
	if len(order) != len(current) {
		return nil, &ReorderError{
			Reason: fmt.Sprintf("expected %d ids, got %d", len(current), len(order)),
		}
	}

	byID := make(map[string]domain.Chapter, len(current))
	for _, ch := range current {
		byID[ch.ID] = ch
	}

	seen := make(map[string]bool, len(order))
	out := make([]domain.Chapter, 0, len(current))
	for _, id := range order {
		ch, ok := byID[id]
		if !ok {
			return nil, &ReorderError{ID: id, Reason: "unknown chapter id"}
		}
		if seen[id] {
			return nil, &ReorderError{ID: id, Reason: "duplicate chapter id"}
		}
		seen[id] = true
		out = append(out, ch)
	}
	return out, nil
}

// DerivePageNumbers assigns 1-based sequence numbers to body chapters in
// list order. Non-body chapters do not consume a number and are absent from
// the result. The numbering is a projection of list order, never stored.
func DerivePageNumbers(chapters []domain.Chapter) map[string]int {
	numbers := make(map[string]int)
	n := 1
	for _, ch := range chapters {
		if ch.Type != domain.TypeChapter {
			continue
		}
		numbers[ch.ID] = n
		n++
	}
	return numbers
}
