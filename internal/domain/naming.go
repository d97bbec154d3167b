package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Marker tokens that classify a file as front or back matter, matched as a
// case-insensitive substring of the file's base name.
const (
	frontMatterMarker = "kata pengantar"
	backMatterMarker  = "penutup"
)

var (
	chapterFolderRegex  = regexp.MustCompile(`^BAB (\d+) - (.+)$`)
	subChapterFileRegex = regexp.MustCompile(`^(\d+)\.(\d+) (.+)\.txt$`)
)

// ChapterFolder is the parsed form of a chapter folder name,
// e.g. "BAB 3 - Awal" -> {Number: 3, Title: "Awal"}
type ChapterFolder struct {
	Number int
	Title  string
}

// ParseChapterFolder matches a folder name against the chapter folder
// grammar. The number is a sort key only, not a uniqueness constraint.
func ParseChapterFolder(name string) (ChapterFolder, bool) {
	m := chapterFolderRegex.FindStringSubmatch(name)
	if m == nil {
		return ChapterFolder{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return ChapterFolder{}, false
	}
	return ChapterFolder{Number: n, Title: m[2]}, true
}

// SubChapterFile is the parsed form of a sub-chapter file name,
// e.g. "3.1 Pembuka.txt" -> {Major: 3, Minor: 1, Title: "Pembuka"}
type SubChapterFile struct {
	Major int
	Minor int
	Title string
}

// ParseSubChapterFile matches a file's base name against the sub-chapter
// grammar: a numeric prefix with exactly one fractional component, a space,
// the title, and the text extension.
func ParseSubChapterFile(name string) (SubChapterFile, bool) {
	m := subChapterFileRegex.FindStringSubmatch(name)
	if m == nil {
		return SubChapterFile{}, false
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return SubChapterFile{}, false
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return SubChapterFile{}, false
	}
	return SubChapterFile{Major: major, Minor: minor, Title: m[3]}, true
}

// IsFrontMatterFile reports whether a file's base name carries the
// front matter marker
func IsFrontMatterFile(name string) bool {
	return strings.Contains(strings.ToLower(name), frontMatterMarker)
}

// IsBackMatterFile reports whether a file's base name carries the
// back matter marker
func IsBackMatterFile(name string) bool {
	return strings.Contains(strings.ToLower(name), backMatterMarker)
}
