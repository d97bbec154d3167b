package domain

// ChapterType represents the structural role of a chapter
type ChapterType string

const (
	TypeFrontMatter ChapterType = "frontmatter"
	TypeChapter     ChapterType = "chapter"
	TypeBackMatter  ChapterType = "backmatter"
)

// Label returns a human-readable name for the chapter type
func (t ChapterType) Label() string {
	switch t {
	case TypeFrontMatter:
		return "Front Matter"
	case TypeChapter:
		return "Chapter"
	case TypeBackMatter:
		return "Back Matter"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the three structural roles
func (t ChapterType) Valid() bool {
	switch t {
	case TypeFrontMatter, TypeChapter, TypeBackMatter:
		return true
	}
	return false
}

// Default presentation attributes assigned to every new chapter
const (
	DefaultIndentation = 0
	DefaultLineSpacing = 1.5
)

// SubChapter is a leaf content unit nested under a body chapter.
// Order within Chapter.SubChapters is the reading order.
type SubChapter struct {
	ID      string
	Title   string
	Content string
}

// Chapter is a top-level content unit of the manuscript. Type is fixed at
// creation; to change role a chapter must be removed and re-added.
type Chapter struct {
	ID          string
	Title       string
	Content     string // empty for container chapters whose content lives in sub-chapters
	Images      []string
	Type        ChapterType
	Indentation int
	LineSpacing float64
	SubChapters []SubChapter
}

// SubChapterRequest carries the data for one sub-chapter prior to id assignment
type SubChapterRequest struct {
	Title   string
	Content string
}

// CreationRequest is the importer's output: data sufficient to materialize a
// Chapter, prior to identifier assignment and list insertion.
type CreationRequest struct {
	Title       string
	Content     string
	Type        ChapterType
	SubChapters []SubChapterRequest
}

// SplitSegments partitions chapters into the three structural segments,
// preserving relative order within each. Chapters with an unrecognized type
// are treated as body chapters.
func SplitSegments(chapters []Chapter) (front, body, back []Chapter) {
	for _, ch := range chapters {
		switch ch.Type {
		case TypeFrontMatter:
			front = append(front, ch)
		case TypeBackMatter:
			back = append(back, ch)
		default:
			body = append(body, ch)
		}
	}
	return front, body, back
}
