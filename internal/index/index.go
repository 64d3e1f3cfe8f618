// Package index keeps a persistent record of the notes in a directory and
// the wiki-link targets each one carries.
package index

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gerunddev/wikidoc/internal/markdown"
	"github.com/google/uuid"
)

// FileState represents the indexed state of a single note
type FileState struct {
	ID    string   `json:"id"`
	MTime int64    `json:"mtime"`
	Hash  string   `json:"hash"`
	Title string   `json:"title"`
	Links []string `json:"links"`
}

// Index represents the link index
type Index struct {
	Files map[string]*FileState `json:"files"`
	IDMap map[string]string     `json:"id_map"` // note id -> path
}

// NewIndex creates a new empty index
func NewIndex() *Index {
	return &Index{
		Files: make(map[string]*FileState),
		IDMap: make(map[string]string),
	}
}

// Load reads the index from path. A missing file yields an empty index.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewIndex(), nil
		}
		return nil, err
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to parse index: %w", err)
	}

	if idx.Files == nil {
		idx.Files = make(map[string]*FileState)
	}
	if idx.IDMap == nil {
		idx.IDMap = make(map[string]string)
	}

	return &idx, nil
}

// Save writes the index to path
func (idx *Index) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write index file: %w", err)
	}

	return nil
}

// ComputeHash computes SHA256 hash of a file
func ComputeHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

// HasChanged checks if a file has changed since it was last indexed
// Uses hybrid mtime + hash approach
func (idx *Index) HasChanged(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	fileState, exists := idx.Files[path]
	if !exists {
		return true, nil
	}

	// Fast path: check mtime first
	if info.ModTime().Unix() == fileState.MTime {
		return false, nil
	}

	// mtime changed, compute hash to check for actual content changes
	hash, err := ComputeHash(path)
	if err != nil {
		return false, err
	}

	return hash != fileState.Hash, nil
}

// Update records the parsed document for path, keeping an existing note ID
func (idx *Index) Update(path string, doc markdown.Document) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	hash, err := ComputeHash(path)
	if err != nil {
		return err
	}

	id := uuid.New().String()
	if prev, ok := idx.Files[path]; ok && prev.ID != "" {
		id = prev.ID
	}

	links := doc.Links()
	if links == nil {
		links = []string{}
	}

	idx.Files[path] = &FileState{
		ID:    id,
		MTime: info.ModTime().Unix(),
		Hash:  hash,
		Title: Title(path, doc),
		Links: links,
	}
	idx.IDMap[id] = path

	return nil
}

// Remove drops a note from the index
func (idx *Index) Remove(path string) {
	if fs, ok := idx.Files[path]; ok {
		delete(idx.IDMap, fs.ID)
		delete(idx.Files, path)
	}
}

// GetMTime returns the indexed modification time for a file
func (idx *Index) GetMTime(path string) time.Time {
	if fileState, exists := idx.Files[path]; exists {
		return time.Unix(fileState.MTime, 0)
	}
	return time.Time{}
}

// Title returns the first heading's title content, or the file's base name
// without extension when the note has no titled heading.
func Title(path string, doc markdown.Document) string {
	for _, el := range doc.Elements {
		if h, ok := el.(*markdown.Heading); ok && h.Title.Content != "" {
			return h.Title.Content
		}
	}
	return noteName(path)
}

func noteName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Resolve finds the note a link target points to, matching the file's base
// name first and then the note title, both case-insensitively.
func (idx *Index) Resolve(target string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(target))
	if key == "" {
		return "", false
	}

	var byTitle []string
	for _, path := range idx.Paths() {
		if strings.ToLower(noteName(path)) == key {
			return path, true
		}
		if strings.ToLower(idx.Files[path].Title) == key {
			byTitle = append(byTitle, path)
		}
	}

	if len(byTitle) > 0 {
		return byTitle[0], true
	}
	return "", false
}

// Paths returns all indexed paths in sorted order
func (idx *Index) Paths() []string {
	paths := make([]string, 0, len(idx.Files))
	for path := range idx.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Backlinks returns the sorted paths of notes linking to the note that
// target resolves to. A note linking to itself is not a backlink.
func (idx *Index) Backlinks(target string) []string {
	dest, ok := idx.Resolve(target)
	if !ok {
		return nil
	}
	return idx.BacklinksTo(dest)
}

// BacklinksTo returns the sorted paths of notes linking to the note at dest
func (idx *Index) BacklinksTo(dest string) []string {
	var sources []string
	for _, path := range idx.Paths() {
		if path == dest {
			continue
		}
		for _, link := range idx.Files[path].Links {
			if resolved, ok := idx.Resolve(link); ok && resolved == dest {
				sources = append(sources, path)
				break
			}
		}
	}
	return sources
}

// Dangling maps every link target that resolves to no note to the sorted
// paths of the notes using it.
func (idx *Index) Dangling() map[string][]string {
	dangling := make(map[string][]string)
	for _, path := range idx.Paths() {
		seen := make(map[string]bool)
		for _, link := range idx.Files[path].Links {
			if seen[link] {
				continue
			}
			seen[link] = true
			if _, ok := idx.Resolve(link); !ok {
				dangling[link] = append(dangling[link], path)
			}
		}
	}
	return dangling
}
