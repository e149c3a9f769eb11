// Package loader reads location-history documents from a directory.
package loader

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"iter"
	"slices"
	"strings"

	"github.com/pkordes/timeline-export/internal/domain"
)

// Extension is the only file suffix the loader considers.
const Extension = ".json"

// rawDocument mirrors the top level of a source file. A nil pointer
// means timelineObjects was absent (or null).
type rawDocument struct {
	TimelineObjects *[]json.RawMessage `json:"timelineObjects"`
}

// Result is one step of the loader sequence: either a parsed document
// or the reason the file was skipped.
type Result struct {
	Name     string
	Document domain.Document
	Err      error
}

// Loader reads documents from the root of an fs.FS.
// In production pass os.DirFS(dir); in tests pass an fstest.MapFS.
type Loader struct {
	fsys fs.FS
}

// New constructs a Loader over fsys.
func New(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// List returns the names of all regular .json files at the root of the
// filesystem in ascending lexicographic order.
// Returns domain.ErrNoSourceFiles if there are none.
func (l *Loader) List() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("loader.Loader.List: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("loader.Loader.List: %w", domain.ErrNoSourceFiles)
	}
	slices.Sort(names)
	return names, nil
}

// Read opens and parses a single document.
// The returned error wraps domain.ErrUnreadable, domain.ErrMalformed or
// domain.ErrMissingTimeline.
func (l *Loader) Read(name string) (domain.Document, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", domain.ErrUnreadable, err)
	}
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
	}
	if raw.TimelineObjects == nil {
		return domain.Document{}, domain.ErrMissingTimeline
	}
	return domain.Document{Name: name, Objects: *raw.TimelineObjects}, nil
}

// All lazily reads every listed file in order. A failing file yields a
// Result with Err set and iteration continues with the next file.
func (l *Loader) All(names []string) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for _, name := range names {
			doc, err := l.Read(name)
			if !yield(Result{Name: name, Document: doc, Err: err}) {
				return
			}
		}
	}
}
