package commands

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"naskah/internal/adapters/memory"
	"naskah/internal/application"
	"naskah/internal/domain"
	"naskah/internal/ports"
	"naskah/internal/structurer"
)

type stubIDs struct{ n int }

func (s *stubIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type fakeSource struct {
	files []ports.FileEntry
	err   error
}

func (s *fakeSource) Files(ctx context.Context) ([]ports.FileEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.files, nil
}

type fakeFile struct {
	path string
	text string
}

func (f *fakeFile) RelativePath() string                       { return f.path }
func (f *fakeFile) ReadText(ctx context.Context) (string, error) { return f.text, nil }

func seedStore(t *testing.T, titles map[domain.ChapterType][]string) ports.ManuscriptStore {
	t.Helper()
	store := memory.NewStore()
	ids := &stubIDs{}
	for _, typ := range []domain.ChapterType{domain.TypeFrontMatter, domain.TypeChapter, domain.TypeBackMatter} {
		for _, title := range titles[typ] {
			cmd := NewAddChapterCommand(store, ids, title, typ)
			if _, err := cmd.Execute(context.Background()); err != nil {
				t.Fatalf("seeding %q failed: %v", title, err)
			}
		}
	}
	return store
}

func chapterIDs(chapters []domain.Chapter) []string {
	ids := make([]string, len(chapters))
	for i, ch := range chapters {
		ids[i] = ch.ID
	}
	return ids
}

func TestAddChapterCommand(t *testing.T) {
	store := memory.NewStore()
	ids := &stubIDs{}

	for _, title := range []string{"Bab Satu", "Bab Dua"} {
		cmd := NewAddChapterCommand(store, ids, title, domain.TypeChapter)
		if _, err := cmd.Execute(context.Background()); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
	}
	if _, err := NewAddChapterCommand(store, ids, "Kata Pengantar", domain.TypeFrontMatter).Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	chapters, err := store.Chapters(context.Background())
	if err != nil {
		t.Fatalf("Chapters failed: %v", err)
	}
	wantTitles := []string{"Kata Pengantar", "Bab Satu", "Bab Dua"}
	if len(chapters) != len(wantTitles) {
		t.Fatalf("got %d chapters, want %d", len(chapters), len(wantTitles))
	}
	for i, title := range wantTitles {
		if chapters[i].Title != title {
			t.Errorf("chapter[%d] = %q, want %q", i, chapters[i].Title, title)
		}
	}
}

func TestAddChapterCommand_Validation(t *testing.T) {
	store := memory.NewStore()
	ids := &stubIDs{}

	tests := []struct {
		name  string
		title string
		typ   domain.ChapterType
	}{
		{"empty title", "", domain.TypeChapter},
		{"invalid type", "Bab", domain.ChapterType("appendix")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAddChapterCommand(store, ids, tt.title, tt.typ).Execute(context.Background())
			var verr *application.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestImportCommand(t *testing.T) {
	store := seedStore(t, map[domain.ChapterType][]string{
		domain.TypeChapter:    {"Bab Lama"},
		domain.TypeBackMatter: {"Penutup Lama"},
	})

	source := &fakeSource{files: []ports.FileEntry{
		&fakeFile{path: "naskah/Kata Pengantar.txt", text: "pengantar"},
		&fakeFile{path: "naskah/BAB 1 - Awal/1.1 Mula.txt", text: "isi"},
		&fakeFile{path: "naskah/coret-coretan.txt", text: "x"},
	}}

	cmd := NewImportCommand(store, source, &stubIDs{n: 100})
	res, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if res.Created != 2 {
		t.Errorf("created = %d, want 2", res.Created)
	}
	if res.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", res.Skipped)
	}

	// Imported chapters land at the end of their own segments.
	wantTitles := []string{"Kata Pengantar", "Bab Lama", "Awal", "Penutup Lama"}
	if len(res.Chapters) != len(wantTitles) {
		t.Fatalf("got %d chapters, want %d", len(res.Chapters), len(wantTitles))
	}
	for i, title := range wantTitles {
		if res.Chapters[i].Title != title {
			t.Errorf("chapter[%d] = %q, want %q", i, res.Chapters[i].Title, title)
		}
	}

	stored, err := store.Chapters(context.Background())
	if err != nil {
		t.Fatalf("Chapters failed: %v", err)
	}
	if len(stored) != len(wantTitles) {
		t.Errorf("store has %d chapters, want %d", len(stored), len(wantTitles))
	}
}

func TestImportCommand_SourceError(t *testing.T) {
	store := memory.NewStore()
	source := &fakeSource{err: errors.New("no such directory")}

	_, err := NewImportCommand(store, source, &stubIDs{}).Execute(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	chapters, _ := store.Chapters(context.Background())
	if len(chapters) != 0 {
		t.Errorf("store should be untouched, has %d chapters", len(chapters))
	}
}

func TestReorderCommand(t *testing.T) {
	store := seedStore(t, map[domain.ChapterType][]string{
		domain.TypeChapter: {"Satu", "Dua", "Tiga"},
	})
	current, _ := store.Chapters(context.Background())
	ids := chapterIDs(current)

	reversed := []string{ids[2], ids[1], ids[0]}
	res, err := NewReorderCommand(store, reversed).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	for i, id := range reversed {
		if res.Chapters[i].ID != id {
			t.Errorf("chapter[%d] = %s, want %s", i, res.Chapters[i].ID, id)
		}
	}

	stored, _ := store.Chapters(context.Background())
	if stored[0].Title != "Tiga" {
		t.Errorf("reorder not persisted, first chapter = %q", stored[0].Title)
	}
}

func TestReorderCommand_InvalidLeavesStoreUnchanged(t *testing.T) {
	store := seedStore(t, map[domain.ChapterType][]string{
		domain.TypeChapter: {"Satu", "Dua"},
	})
	before, _ := store.Chapters(context.Background())

	_, err := NewReorderCommand(store, []string{before[0].ID, "tidak-ada"}).Execute(context.Background())
	if !errors.Is(err, structurer.ErrInvalidReorder) {
		t.Fatalf("expected ErrInvalidReorder, got %v", err)
	}

	after, _ := store.Chapters(context.Background())
	for i := range before {
		if after[i].ID != before[i].ID {
			t.Fatalf("store changed after failed reorder at index %d", i)
		}
	}
}

func TestListCommand_DerivesPageNumbers(t *testing.T) {
	store := seedStore(t, map[domain.ChapterType][]string{
		domain.TypeFrontMatter: {"Kata Pengantar"},
		domain.TypeChapter:     {"Satu", "Dua"},
		domain.TypeBackMatter:  {"Penutup"},
	})

	rows, err := NewListCommand(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	wantPages := []int{0, 1, 2, 0}
	if len(rows) != len(wantPages) {
		t.Fatalf("got %d rows, want %d", len(rows), len(wantPages))
	}
	for i, page := range wantPages {
		if rows[i].PageNumber != page {
			t.Errorf("row[%d] (%s) page = %d, want %d",
				i, rows[i].Chapter.Title, rows[i].PageNumber, page)
		}
	}
}

func TestRemoveChapterCommand(t *testing.T) {
	store := seedStore(t, map[domain.ChapterType][]string{
		domain.TypeChapter: {"Satu", "Dua"},
	})
	current, _ := store.Chapters(context.Background())

	res, err := NewRemoveChapterCommand(store, current[0].ID).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if res.Removed.Title != "Satu" {
		t.Errorf("removed %q, want %q", res.Removed.Title, "Satu")
	}

	after, _ := store.Chapters(context.Background())
	if len(after) != 1 || after[0].Title != "Dua" {
		t.Errorf("store after remove = %v", after)
	}
}

func TestRemoveChapterCommand_NotFound(t *testing.T) {
	store := seedStore(t, map[domain.ChapterType][]string{
		domain.TypeChapter: {"Satu"},
	})

	_, err := NewRemoveChapterCommand(store, "tidak-ada").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
