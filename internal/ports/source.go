package ports

import "context"

// FileEntry is a single uploaded file addressed by a slash-delimited,
// root-relative path. Content is fetched on demand; the importer only reads
// files it actually needs.
type FileEntry interface {
	RelativePath() string
	ReadText(ctx context.Context) (string, error)
}

// FileSource supplies a batch of files for import. The core is agnostic of
// whether it is a filesystem, an archive, or a browser file list.
type FileSource interface {
	Files(ctx context.Context) ([]FileEntry, error)
}
