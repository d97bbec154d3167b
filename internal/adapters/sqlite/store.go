// Package sqlite persists the manuscript chapter list in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"naskah/internal/domain"
	"naskah/internal/ports"
)

// Store implements ports.ManuscriptStore backed by SQLite. Storage order is
// the position column; derived numbering is never persisted.
type Store struct {
	db *sql.DB
}

// Ensure Store implements ManuscriptStore
var _ ports.ManuscriptStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS chapters (
	id           TEXT PRIMARY KEY,
	position     INTEGER NOT NULL,
	title        TEXT NOT NULL,
	content      TEXT NOT NULL,
	type         TEXT NOT NULL,
	indentation  INTEGER NOT NULL,
	line_spacing REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS sub_chapters (
	id         TEXT PRIMARY KEY,
	chapter_id TEXT NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS chapter_images (
	chapter_id TEXT NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	ref        TEXT NOT NULL,
	PRIMARY KEY (chapter_id, position)
);
CREATE INDEX IF NOT EXISTS idx_chapters_position ON chapters(position);
CREATE INDEX IF NOT EXISTS idx_sub_chapters_chapter ON sub_chapters(chapter_id, position);
`

// Open opens (creating if needed) the manuscript database at dbPath
func Open(dbPath string) (*Store, error) {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create library directory: %w", err)
	}

	// WAL mode for better concurrency; foreign keys keep sub-chapters and
	// image refs tied to their chapter row.
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Chapters returns the full list in storage order
func (s *Store) Chapters(ctx context.Context) ([]domain.Chapter, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content, type, indentation, line_spacing
		FROM chapters ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query chapters: %w", err)
	}
	defer rows.Close()

	var chapters []domain.Chapter
	index := make(map[string]int)
	for rows.Next() {
		var ch domain.Chapter
		var typ string
		if err := rows.Scan(&ch.ID, &ch.Title, &ch.Content, &typ, &ch.Indentation, &ch.LineSpacing); err != nil {
			return nil, fmt.Errorf("failed to scan chapter: %w", err)
		}
		ch.Type = domain.ChapterType(typ)
		ch.Images = []string{}
		index[ch.ID] = len(chapters)
		chapters = append(chapters, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chapters: %w", err)
	}

	if err := s.loadSubChapters(ctx, chapters, index); err != nil {
		return nil, err
	}
	if err := s.loadImages(ctx, chapters, index); err != nil {
		return nil, err
	}
	return chapters, nil
}

func (s *Store) loadSubChapters(ctx context.Context, chapters []domain.Chapter, index map[string]int) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT chapter_id, id, title, content
		FROM sub_chapters ORDER BY chapter_id, position`)
	if err != nil {
		return fmt.Errorf("failed to query sub-chapters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var chapterID string
		var sub domain.SubChapter
		if err := rows.Scan(&chapterID, &sub.ID, &sub.Title, &sub.Content); err != nil {
			return fmt.Errorf("failed to scan sub-chapter: %w", err)
		}
		if i, ok := index[chapterID]; ok {
			chapters[i].SubChapters = append(chapters[i].SubChapters, sub)
		}
	}
	return rows.Err()
}

func (s *Store) loadImages(ctx context.Context, chapters []domain.Chapter, index map[string]int) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT chapter_id, ref
		FROM chapter_images ORDER BY chapter_id, position`)
	if err != nil {
		return fmt.Errorf("failed to query images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var chapterID, ref string
		if err := rows.Scan(&chapterID, &ref); err != nil {
			return fmt.Errorf("failed to scan image ref: %w", err)
		}
		if i, ok := index[chapterID]; ok {
			chapters[i].Images = append(chapters[i].Images, ref)
		}
	}
	return rows.Err()
}

// AddChapter inserts the chapter at the end of its structural segment
func (s *Store) AddChapter(ctx context.Context, ch domain.Chapter) error {
	chapters, err := s.Chapters(ctx)
	if err != nil {
		return err
	}

	front, body, back := domain.SplitSegments(chapters)
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
	return s.ReorderChapters(ctx, next)
}

// ReorderChapters replaces the stored list in a single transaction
func (s *Store) ReorderChapters(ctx context.Context, chapters []domain.Chapter) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"chapter_images", "sub_chapters", "chapters"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for pos, ch := range chapters {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO chapters (id, position, title, content, type, indentation, line_spacing)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			ch.ID, pos, ch.Title, ch.Content, string(ch.Type), ch.Indentation, ch.LineSpacing); err != nil {
			return fmt.Errorf("failed to insert chapter %s: %w", ch.ID, err)
		}
		for i, sub := range ch.SubChapters {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO sub_chapters (id, chapter_id, position, title, content)
				VALUES (?, ?, ?, ?, ?)`,
				sub.ID, ch.ID, i, sub.Title, sub.Content); err != nil {
				return fmt.Errorf("failed to insert sub-chapter %s: %w", sub.ID, err)
			}
		}
		for i, ref := range ch.Images {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO chapter_images (chapter_id, position, ref)
				VALUES (?, ?, ?)`,
				ch.ID, i, ref); err != nil {
				return fmt.Errorf("failed to insert image ref: %w", err)
			}
		}
	}

	return tx.Commit()
}
