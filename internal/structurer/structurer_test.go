package structurer

import (
	"errors"
	"fmt"
	"testing"

	"naskah/internal/domain"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// segmentRank maps a chapter type to its position in the global ordering.
func segmentRank(t domain.ChapterType) int {
	switch t {
	case domain.TypeFrontMatter:
		return 0
	case domain.TypeBackMatter:
		return 2
	default:
		return 1
	}
}

func assertSegmentInvariant(t *testing.T, chapters []domain.Chapter) {
	t.Helper()
	for i := 1; i < len(chapters); i++ {
		if segmentRank(chapters[i-1].Type) > segmentRank(chapters[i].Type) {
			t.Errorf("segment invariant violated at index %d: %s after %s",
				i, chapters[i].Type, chapters[i-1].Type)
		}
	}
}

func TestMaterialize_Defaults(t *testing.T) {
	req := domain.CreationRequest{
		Title: "Awal",
		Type:  domain.TypeChapter,
		SubChapters: []domain.SubChapterRequest{
			{Title: "Pembuka", Content: "isi pembuka"},
			{Title: "Lanjutan", Content: "isi lanjutan"},
		},
	}

	ch := Materialize(req, seqIDs())

	if ch.ID == "" {
		t.Error("chapter id should be assigned")
	}
	if ch.Indentation != domain.DefaultIndentation {
		t.Errorf("indentation = %d, want %d", ch.Indentation, domain.DefaultIndentation)
	}
	if ch.LineSpacing != domain.DefaultLineSpacing {
		t.Errorf("lineSpacing = %v, want %v", ch.LineSpacing, domain.DefaultLineSpacing)
	}
	if ch.Images == nil || len(ch.Images) != 0 {
		t.Errorf("images should be empty, got %v", ch.Images)
	}
	if len(ch.SubChapters) != 2 {
		t.Fatalf("got %d sub-chapters, want 2", len(ch.SubChapters))
	}
	if ch.SubChapters[0].Title != "Pembuka" || ch.SubChapters[1].Title != "Lanjutan" {
		t.Errorf("sub-chapter order not preserved: %v", ch.SubChapters)
	}
	ids := map[string]bool{ch.ID: true}
	for _, sub := range ch.SubChapters {
		if sub.ID == "" {
			t.Error("sub-chapter id should be assigned")
		}
		if ids[sub.ID] {
			t.Errorf("duplicate id %s", sub.ID)
		}
		ids[sub.ID] = true
	}
}

func TestAppend_SegmentOrdering(t *testing.T) {
	created := []domain.CreationRequest{
		{Title: "Penutup", Type: domain.TypeBackMatter},
		{Title: "Bab Satu", Type: domain.TypeChapter},
		{Title: "Kata Pengantar", Type: domain.TypeFrontMatter},
		{Title: "Bab Dua", Type: domain.TypeChapter},
	}

	got := Append(nil, created, seqIDs())

	if len(got) != 4 {
		t.Fatalf("got %d chapters, want 4", len(got))
	}
	assertSegmentInvariant(t, got)

	wantTitles := []string{"Kata Pengantar", "Bab Satu", "Bab Dua", "Penutup"}
	for i, title := range wantTitles {
		if got[i].Title != title {
			t.Errorf("chapter[%d] = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestAppend_InsertsAtSegmentEnds(t *testing.T) {
	current := Append(nil, []domain.CreationRequest{
		{Title: "Front A", Type: domain.TypeFrontMatter},
		{Title: "Body A", Type: domain.TypeChapter},
		{Title: "Back A", Type: domain.TypeBackMatter},
	}, seqIDs())

	next := Append(current, []domain.CreationRequest{
		{Title: "Front B", Type: domain.TypeFrontMatter},
		{Title: "Body B", Type: domain.TypeChapter},
		{Title: "Back B", Type: domain.TypeBackMatter},
	}, seqIDs())

	wantTitles := []string{"Front A", "Front B", "Body A", "Body B", "Back A", "Back B"}
	if len(next) != len(wantTitles) {
		t.Fatalf("got %d chapters, want %d", len(next), len(wantTitles))
	}
	for i, title := range wantTitles {
		if next[i].Title != title {
			t.Errorf("chapter[%d] = %q, want %q", i, next[i].Title, title)
		}
	}
	assertSegmentInvariant(t, next)
}

func TestAppend_TwiceHoldsInvariantWithDistinctIDs(t *testing.T) {
	created := []domain.CreationRequest{
		{Title: "Kata Pengantar", Type: domain.TypeFrontMatter},
		{Title: "Bab Satu", Type: domain.TypeChapter},
	}
	newID := seqIDs()

	once := Append(nil, created, newID)
	twice := Append(once, created, newID)

	if len(twice) != 4 {
		t.Fatalf("got %d chapters, want 4", len(twice))
	}
	assertSegmentInvariant(t, twice)

	seen := make(map[string]bool)
	titles := make(map[string]int)
	for _, ch := range twice {
		if seen[ch.ID] {
			t.Errorf("duplicate id %s", ch.ID)
		}
		seen[ch.ID] = true
		titles[ch.Title]++
	}
	if titles["Bab Satu"] != 2 || titles["Kata Pengantar"] != 2 {
		t.Errorf("expected duplicate titles across halves, got %v", titles)
	}
}

func TestAppend_DoesNotMutateInput(t *testing.T) {
	current := Append(nil, []domain.CreationRequest{
		{Title: "Bab Satu", Type: domain.TypeChapter},
	}, seqIDs())
	snapshot := make([]domain.Chapter, len(current))
	copy(snapshot, current)

	Append(current, []domain.CreationRequest{
		{Title: "Kata Pengantar", Type: domain.TypeFrontMatter},
	}, seqIDs())

	for i := range snapshot {
		if current[i].ID != snapshot[i].ID {
			t.Fatalf("input slice mutated at %d", i)
		}
	}
}

func TestReorder_AppliesPermutation(t *testing.T) {
	current := []domain.Chapter{
		{ID: "a", Type: domain.TypeChapter},
		{ID: "b", Type: domain.TypeChapter},
		{ID: "c", Type: domain.TypeChapter},
	}

	got, err := Reorder(current, []string{"c", "a", "b"})
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	want := []string{"c", "a", "b"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("chapter[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestReorder_AcceptsCrossSegmentPermutation(t *testing.T) {
	// The reorder contract is permissive: any permutation is applied
	// verbatim, even one that interleaves segments. Numbering derivation
	// stays correct regardless of storage order.
	current := []domain.Chapter{
		{ID: "f", Type: domain.TypeFrontMatter},
		{ID: "b1", Type: domain.TypeChapter},
		{ID: "x", Type: domain.TypeBackMatter},
	}

	got, err := Reorder(current, []string{"x", "f", "b1"})
	if err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}
	if got[0].ID != "x" || got[1].ID != "f" || got[2].ID != "b1" {
		t.Errorf("permutation not applied verbatim: %v", got)
	}
}

func TestReorder_RejectsNonPermutation(t *testing.T) {
	current := []domain.Chapter{
		{ID: "a", Type: domain.TypeChapter},
		{ID: "b", Type: domain.TypeChapter},
		{ID: "c", Type: domain.TypeChapter},
	}

	tests := []struct {
		name  string
		order []string
	}{
		{"missing id", []string{"a", "b"}},
		{"duplicate id", []string{"a", "b", "b"}},
		{"unknown id", []string{"a", "b", "z"}},
		{"too many ids", []string{"a", "b", "c", "d"}},
		{"empty order", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reorder(current, tt.order)
			if err == nil {
				t.Fatalf("expected error, got list %v", got)
			}
			if !errors.Is(err, ErrInvalidReorder) {
				t.Errorf("error %v should match ErrInvalidReorder", err)
			}
			// The input list is untouched.
			wantIDs := []string{"a", "b", "c"}
			for i, id := range wantIDs {
				if current[i].ID != id {
					t.Errorf("current[%d] = %s, want %s", i, current[i].ID, id)
				}
			}
		})
	}
}

func TestDerivePageNumbers_GapFree(t *testing.T) {
	chapters := []domain.Chapter{
		{ID: "f1", Type: domain.TypeFrontMatter},
		{ID: "b1", Type: domain.TypeChapter},
		{ID: "f2", Type: domain.TypeFrontMatter},
		{ID: "b2", Type: domain.TypeChapter},
		{ID: "x1", Type: domain.TypeBackMatter},
		{ID: "b3", Type: domain.TypeChapter},
	}

	numbers := DerivePageNumbers(chapters)

	want := map[string]int{"b1": 1, "b2": 2, "b3": 3}
	if len(numbers) != len(want) {
		t.Fatalf("got %d numbered chapters, want %d", len(numbers), len(want))
	}
	for id, n := range want {
		if numbers[id] != n {
			t.Errorf("pageNumber[%s] = %d, want %d", id, numbers[id], n)
		}
	}
	for _, id := range []string{"f1", "f2", "x1"} {
		if _, ok := numbers[id]; ok {
			t.Errorf("non-body chapter %s should not be numbered", id)
		}
	}
}

func TestDerivePageNumbers_Empty(t *testing.T) {
	if numbers := DerivePageNumbers(nil); len(numbers) != 0 {
		t.Errorf("expected empty map, got %v", numbers)
	}
}
