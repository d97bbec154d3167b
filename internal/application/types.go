package application

import "naskah/internal/domain"

// Re-export domain types for use by adapters
type (
	Chapter           = domain.Chapter
	SubChapter        = domain.SubChapter
	ChapterType       = domain.ChapterType
	CreationRequest   = domain.CreationRequest
	SubChapterRequest = domain.SubChapterRequest
)

const (
	TypeFrontMatter = domain.TypeFrontMatter
	TypeChapter     = domain.TypeChapter
	TypeBackMatter  = domain.TypeBackMatter
)

// ParseChapterType converts a user-supplied string into a ChapterType
func ParseChapterType(s string) (ChapterType, error) {
	t := ChapterType(s)
	if !t.Valid() {
		return "", &ValidationError{
			Field:   "type",
			Message: "expected frontmatter, chapter, or backmatter",
		}
	}
	return t, nil
}
