package index

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gerunddev/wikidoc/internal/config"
	"github.com/gerunddev/wikidoc/internal/logger"
	"github.com/gerunddev/wikidoc/internal/markdown"
)

// NoteExt is the extension of files picked up by the indexer
const NoteExt = ".md"

// Indexer brings an Index up to date with the notes directory
type Indexer struct {
	config *config.Config
	index  *Index
	log    *logger.Logger
}

// NewIndexer creates a new indexer instance
func NewIndexer(cfg *config.Config, idx *Index) *Indexer {
	return &Indexer{
		config: cfg,
		index:  idx,
		log:    logger.Discard(),
	}
}

// SetLogger sets the logger used for indexing events
func (ix *Indexer) SetLogger(l *logger.Logger) {
	if l != nil {
		ix.log = l
	}
}

// Result represents the result of an indexing run
type Result struct {
	FilesIndexed int
	Unchanged    int
	Removed      int
	Dangling     int
	Errors       []error
	StartTime    time.Time
	EndTime      time.Time
}

// Run scans the notes directory, re-parses changed notes and drops notes
// that no longer exist. Per-file failures are collected in the result.
func (ix *Indexer) Run() (*Result, error) {
	result := &Result{
		StartTime: time.Now(),
	}
	ix.log.IndexStarted(ix.config.NotesDir)

	files, err := ScanDirectory(ix.config.NotesDir, NoteExt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan notes directory: %w", err)
	}

	present := make(map[string]bool, len(files))
	for _, path := range files {
		if ix.config.IsExcluded(path) {
			ix.log.Skipped(path, "excluded")
			continue
		}
		present[path] = true

		changed, err := ix.index.HasChanged(path)
		if err != nil {
			ix.log.FileError(path, err)
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if !changed {
			result.Unchanged++
			continue
		}

		if err := ix.indexFile(path); err != nil {
			ix.log.FileError(path, err)
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", path, err))
			continue
		}
		result.FilesIndexed++
	}

	for _, path := range ix.index.Paths() {
		if !present[path] {
			ix.index.Remove(path)
			ix.log.Skipped(path, "removed")
			result.Removed++
		}
	}

	dangling := ix.index.Dangling()
	targets := make([]string, 0, len(dangling))
	for target := range dangling {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	for _, target := range targets {
		for _, source := range dangling[target] {
			ix.log.DanglingLink(source, target)
		}
	}
	result.Dangling = len(dangling)

	result.EndTime = time.Now()
	ix.log.IndexCompleted(result.FilesIndexed, len(result.Errors), result.EndTime.Sub(result.StartTime))
	return result, nil
}

func (ix *Indexer) indexFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	doc := markdown.Parse(string(content))
	if err := ix.index.Update(path, doc); err != nil {
		return err
	}

	ix.log.DocumentParsed(path, doc.Len(), len(doc.Links()))
	return nil
}

// ScanDirectory scans a directory for files with given extension
func ScanDirectory(dir string, ext string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && filepath.Ext(path) == ext {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// String returns a human-readable summary of the indexing result
func (r *Result) String() string {
	duration := r.EndTime.Sub(r.StartTime)
	return fmt.Sprintf(
		"Index complete: %d notes indexed, %d unchanged, %d removed, %d dangling links, %d errors (took %v)",
		r.FilesIndexed,
		r.Unchanged,
		r.Removed,
		r.Dangling,
		len(r.Errors),
		duration.Round(time.Millisecond),
	)
}
