package generator

import (
	"path"

	"github.com/spf13/afero"

	"github.com/spiderkit/spider/internal/errors"
)

// Writer persists rendered content under an output root, creating
// intermediate directories and overwriting prior output. Write failures
// are fatal and classified, never retried.
type Writer struct {
	fs   afero.Fs
	root string
}

// NewWriter creates a writer rooted at root; an empty root means the
// working directory.
func NewWriter(fs afero.Fs, root string) *Writer {
	return &Writer{fs: fs, root: root}
}

// Write stores content as name inside relDir (relative to the writer's
// root).
func (w *Writer) Write(name, relDir, content string) error {
	dir := path.Join(w.root, relDir)
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.KindWriteFailed, dir, err)
	}

	target := path.Join(dir, name)
	if err := afero.WriteFile(w.fs, target, []byte(content), 0o644); err != nil {
		return errors.Wrap(errors.KindWriteFailed, target, err)
	}
	return nil
}
