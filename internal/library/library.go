package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document describes one PDF file found in the data directory.
type Document struct {
	Name string
	Size int64
}

// EnsureDir creates the data directory if it does not exist yet.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// ListPDFs returns the PDF files directly inside dir, sorted by name.
// Subdirectories are not traversed and non-PDF files are skipped.
func ListPDFs(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		docs = append(docs, Document{Name: entry.Name(), Size: info.Size()})
	}
	// os.ReadDir already sorts entries by filename.
	return docs, nil
}

// Names returns the document filenames in order.
func Names(docs []Document) []string {
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	return names
}

// Paths returns the absolute-ish paths of the documents inside dir.
func Paths(dir string, docs []Document) []string {
	paths := make([]string, len(docs))
	for i, d := range docs {
		paths[i] = filepath.Join(dir, d.Name)
	}
	return paths
}

// UpToDate reports whether the indexed filename set matches the documents
// currently on disk. An empty folder is never up to date.
func UpToDate(indexed []string, docs []Document) bool {
	if len(docs) == 0 || len(indexed) != len(docs) {
		return false
	}
	seen := make(map[string]bool, len(indexed))
	for _, name := range indexed {
		seen[name] = true
	}
	for _, d := range docs {
		if !seen[d.Name] {
			return false
		}
	}
	return true
}
