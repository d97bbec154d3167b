// Package importer turns a flat batch of uploaded files into an ordered
// sequence of chapter creation requests based on the manuscript naming
// convention: one optional front matter file, one optional back matter file,
// and chapter folders named "BAB <n> - <title>" holding sub-chapter files
// named "<n>.<m> <title>.txt".
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"naskah/internal/domain"
	"naskah/internal/ports"
)

// ImportIOError reports a file whose content could not be read. The whole
// batch is aborted: creating structure from partially read data could break
// the segment ordering guarantee downstream.
type ImportIOError struct {
	Path string
	Err  error
}

func (e *ImportIOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ImportIOError) Unwrap() error { return e.Err }

// Request carries one import batch.
type Request struct {
	Files  []ports.FileEntry
	Logger *slog.Logger
}

// Result is the outcome of a successful import. Created is ordered: front
// matter first, body chapters by ascending parsed number, back matter last.
type Result struct {
	Created []domain.CreationRequest
	Skipped int
}

// group collects the files sharing one candidate chapter folder name, in
// batch-encounter order.
type group struct {
	folder  domain.ChapterFolder
	matched bool
	files   []ports.FileEntry
}

type pendingSub struct {
	title string
	file  ports.FileEntry
	text  string
}

type pendingChapter struct {
	folder domain.ChapterFolder
	subs   []*pendingSub
}

// Import classifies and groups the batch, reads the needed file contents
// concurrently, and assembles the creation requests. Malformed names are
// skipped and counted, never an error; an unreadable file aborts the batch
// with an ImportIOError.
func Import(ctx context.Context, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	var frontFile, backFile ports.FileEntry
	skipped := 0

	// Front and back matter are pulled out by filename marker first,
	// independent of folder grouping. First match per marker wins; extra
	// marker files are skipped.
	rest := make([]ports.FileEntry, 0, len(req.Files))
	for _, f := range req.Files {
		name := path.Base(f.RelativePath())
		switch {
		case domain.IsFrontMatterFile(name):
			if frontFile == nil {
				frontFile = f
			} else {
				skipped++
			}
		case domain.IsBackMatterFile(name):
			if backFile == nil {
				backFile = f
			} else {
				skipped++
			}
		default:
			rest = append(rest, f)
		}
	}

	// Group the remaining files by the path segment directly beneath the
	// upload root. Files sitting at the root itself have no folder to group
	// under and are dropped.
	groups := make(map[string]*group)
	var ordered []*group
	for _, f := range rest {
		parts := strings.Split(f.RelativePath(), "/")
		if len(parts) < 2 {
			skipped++
			continue
		}
		key := parts[1]
		g, ok := groups[key]
		if !ok {
			folder, matched := domain.ParseChapterFolder(key)
			g = &group{folder: folder, matched: matched}
			groups[key] = g
			ordered = append(ordered, g)
		}
		g.files = append(g.files, f)
	}

	var pending []*pendingChapter
	for _, g := range ordered {
		if !g.matched {
			skipped += len(g.files)
			continue
		}
		// Lexicographic sort of base names establishes the sub-chapter
		// reading order.
		sort.Slice(g.files, func(i, j int) bool {
			return path.Base(g.files[i].RelativePath()) < path.Base(g.files[j].RelativePath())
		})
		pc := &pendingChapter{folder: g.folder}
		for _, f := range g.files {
			sub, ok := domain.ParseSubChapterFile(path.Base(f.RelativePath()))
			if !ok {
				skipped++
				continue
			}
			pc.subs = append(pc.subs, &pendingSub{title: sub.Title, file: f})
		}
		if len(pc.subs) == 0 {
			// A container with no content is not created.
			log.Debug("dropping empty chapter group", "folder", g.folder.Title)
			continue
		}
		pending = append(pending, pc)
	}

	// Ascending parsed chapter number; duplicate numbers keep their
	// batch-encounter order.
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].folder.Number < pending[j].folder.Number
	})

	// Read every needed file concurrently. Output order below does not
	// depend on read completion order.
	var frontText, backText string
	eg, egCtx := errgroup.WithContext(ctx)
	if frontFile != nil {
		eg.Go(readInto(egCtx, frontFile, &frontText))
	}
	if backFile != nil {
		eg.Go(readInto(egCtx, backFile, &backText))
	}
	for _, pc := range pending {
		for _, sub := range pc.subs {
			eg.Go(readInto(egCtx, sub.file, &sub.text))
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var created []domain.CreationRequest
	if frontFile != nil {
		created = append(created, domain.CreationRequest{
			Title:   titleFromFileName(frontFile.RelativePath()),
			Content: frontText,
			Type:    domain.TypeFrontMatter,
		})
	}
	for _, pc := range pending {
		req := domain.CreationRequest{
			Title: pc.folder.Title,
			Type:  domain.TypeChapter,
		}
		for _, sub := range pc.subs {
			req.SubChapters = append(req.SubChapters, domain.SubChapterRequest{
				Title:   sub.title,
				Content: sub.text,
			})
		}
		created = append(created, req)
	}
	if backFile != nil {
		created = append(created, domain.CreationRequest{
			Title:   titleFromFileName(backFile.RelativePath()),
			Content: backText,
			Type:    domain.TypeBackMatter,
		})
	}

	log.Info("import batch classified",
		"files", len(req.Files),
		"created", len(created),
		"skipped", skipped)

	return &Result{Created: created, Skipped: skipped}, nil
}

func readInto(ctx context.Context, f ports.FileEntry, dst *string) func() error {
	return func() error {
		text, err := f.ReadText(ctx)
		if err != nil {
			return &ImportIOError{Path: f.RelativePath(), Err: err}
		}
		*dst = text
		return nil
	}
}

// titleFromFileName strips the directory and extension,
// e.g. "naskah/Kata Pengantar Penulis.txt" -> "Kata Pengantar Penulis"
func titleFromFileName(relPath string) string {
	name := path.Base(relPath)
	return strings.TrimSuffix(name, path.Ext(name))
}
