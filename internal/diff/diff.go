// Package diff compares the structure of two notes
package diff

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/wikidoc/internal/markdown"
	"github.com/gerunddev/wikidoc/internal/render"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified returns a unified diff of the plain outlines of two documents.
// Identical outlines produce an empty string.
func Unified(oldName, newName string, oldDoc, newDoc markdown.Document) string {
	plain := lipgloss.NewRenderer(io.Discard)
	oldOutline := render.Outline(oldDoc, plain)
	newOutline := render.Outline(newDoc, plain)

	edits := myers.ComputeEdits(span.URIFromPath(oldName), oldOutline, newOutline)
	return fmt.Sprint(gotextdiff.ToUnified(oldName, newName, oldOutline, edits))
}

// Generate parses both files and renders the structural diff for the terminal
func Generate(oldPath, newPath string, nest bool) (string, error) {
	oldDoc, err := parseFile(oldPath, nest)
	if err != nil {
		return "", err
	}
	newDoc, err := parseFile(newPath, nest)
	if err != nil {
		return "", err
	}

	unified := Unified(filepath.Base(oldPath), filepath.Base(newPath), oldDoc, newDoc)
	if unified == "" {
		return "", nil
	}

	// Wrap in diff code fence for syntax highlighting
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to plain diff if glamour fails
		return diffMarkdown, nil
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		// Fallback to plain diff if rendering fails
		return diffMarkdown, nil
	}

	return rendered, nil
}

func parseFile(path string, nest bool) (markdown.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return markdown.Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc := markdown.Parse(string(content))
	if nest {
		doc = markdown.Nest(doc)
	}
	return doc, nil
}
