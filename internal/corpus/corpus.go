// Package corpus discovers, loads, and writes the document corpus.
//
// Discovery and loading happen once at the start of a run; the corpus is
// fixed and fully known before any later stage begins. A document that
// fails to load is logged and skipped, never partially processed. Output
// writing mirrors the source tree under the destination root with a
// partials subdirectory beside it.
package corpus

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Anant-Navadiya/partial-extractor/internal/dom"
	"github.com/Anant-Navadiya/partial-extractor/internal/model"
)

// Discover returns the relative paths of every .html file under root,
// recursively, in sorted order. A sorted result fixes the page order that
// the rest of the run depends on for determinism.
func Discover(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".html") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover source documents: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Loader parses source documents into pages.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load parses the documents at the given relative paths under root.
// A document that cannot be read or parsed is logged and skipped; the
// returned slice preserves the input order of the surviving pages. The
// second return value lists the skipped paths.
func (l *Loader) Load(root string, relPaths []string) ([]*model.Page, []string) {
	pages := make([]*model.Page, 0, len(relPaths))
	var skipped []string
	for _, rel := range relPaths {
		abs := filepath.Join(root, rel)
		f, err := os.Open(abs) //nolint:gosec // Paths come from directory discovery under the user's source root
		if err != nil {
			l.logger.Warn("could not read document, skipping", "page", rel, "error", err)
			skipped = append(skipped, rel)
			continue
		}
		node, err := dom.ParseDocument(f)
		closeErr := f.Close()
		if err != nil {
			l.logger.Warn("could not parse document, skipping", "page", rel, "error", err)
			skipped = append(skipped, rel)
			continue
		}
		if closeErr != nil {
			l.logger.Warn("could not close document, skipping", "page", rel, "error", closeErr)
			skipped = append(skipped, rel)
			continue
		}
		pages = append(pages, &model.Page{
			SourcePath: abs,
			RelPath:    rel,
			Root:       node,
		})
	}
	return pages, skipped
}

// Writer persists fragments and rewritten pages under the destination
// root. Construction performs all directory setup, so a Writer that
// exists can write; setup failures abort before anything is written.
type Writer struct {
	destDir     string
	partialsDir string
}

// NewWriter creates the destination and partials directories and returns
// a Writer over them.
func NewWriter(destDir, partialsDirName string) (*Writer, error) {
	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return nil, fmt.Errorf("create destination directory: %w", err)
	}
	partialsDir := filepath.Join(destDir, partialsDirName)
	if err := os.MkdirAll(partialsDir, 0o750); err != nil {
		return nil, fmt.Errorf("create partials directory: %w", err)
	}
	return &Writer{destDir: destDir, partialsDir: partialsDir}, nil
}

// WriteFragment writes one fragment file into the partials directory.
// A trailing newline is appended when the body lacks one.
func (w *Writer) WriteFragment(name, body string) error {
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	path := filepath.Join(w.partialsDir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		return fmt.Errorf("write fragment %s: %w", name, err)
	}
	return nil
}

// WritePage renders a page tree and writes it to the mirrored relative
// path under the destination root, creating intermediate directories as
// needed.
func (w *Writer) WritePage(page *model.Page) error {
	markup, err := dom.Render(page.Root)
	if err != nil {
		return fmt.Errorf("render page %s: %w", page.RelPath, err)
	}
	out := filepath.Join(w.destDir, page.RelPath)
	if err := os.MkdirAll(filepath.Dir(out), 0o750); err != nil {
		return fmt.Errorf("create output directory for %s: %w", page.RelPath, err)
	}
	if err := os.WriteFile(out, []byte(markup+"\n"), 0o600); err != nil {
		return fmt.Errorf("write page %s: %w", page.RelPath, err)
	}
	return nil
}

// WriteFile writes an arbitrary file (such as the run report) under the
// destination root.
func (w *Writer) WriteFile(name string, data []byte) error {
	path := filepath.Join(w.destDir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// PartialsDir returns the absolute partials directory path.
func (w *Writer) PartialsDir() string {
	return w.partialsDir
}
