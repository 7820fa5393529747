// Package store persists per-item annotation records to a JSON sidecar file.
// Writes are synchronous and happen immediately after each committing
// mutation; there is no batching, debouncing or retry here.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/image-label-go/domain/annotation"
)

// Record is the persisted form of one item: its source identifier and the
// full annotation list in z-order.
type Record struct {
	Src      string                  `json:"src"`
	Elements []annotation.Annotation `json:"elements"`
}

// File reads and writes the record list at a fixed path.
type File struct {
	path   string
	logger *slog.Logger
}

// NewFile returns a store over the given path. The file is created on first
// save.
func NewFile(path string, logger *slog.Logger) *File {
	return &File{path: path, logger: logger}
}

// Path returns the backing file path.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Load reads all records, keyed by src. A missing file is an empty dataset,
// not an error.
func (f *File) Load() (map[string][]annotation.Annotation, error) {
	out := make(map[string][]annotation.Annotation)
	if f == nil || f.path == "" {
		return out, nil
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, fmt.Errorf("read annotations: %w", err)
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return out, fmt.Errorf("decode annotations: %w", err)
	}
	for _, r := range recs {
		out[r.Src] = r.Elements
	}
	if f.logger != nil {
		f.logger.Info("annotations loaded", "path", f.path, "items", len(recs))
	}
	return out, nil
}

// Save rewrites the whole record list. Items without annotations are kept in
// the file so the record order mirrors the dataset order.
func (f *File) Save(recs []Record) error {
	if f == nil || f.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode annotations: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write annotations: %w", err)
	}
	return nil
}

// Snapshot assembles the current records for the given item order from a
// collection.
func Snapshot(srcs []string, coll *annotation.Collection) []Record {
	recs := make([]Record, 0, len(srcs))
	for _, src := range srcs {
		recs = append(recs, Record{Src: src, Elements: coll.Set(src).Items()})
	}
	return recs
}
