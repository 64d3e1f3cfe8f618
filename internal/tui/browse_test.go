package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/wikidoc/internal/index"
	"github.com/gerunddev/wikidoc/internal/markdown"
)

func testIndex(t *testing.T) (*index.Index, string) {
	t.Helper()
	dir := t.TempDir()
	notes := map[string]string{
		"home.md":   "# Home\n- [[Garden]]\n[[Missing]]",
		"garden.md": "# Garden\nback to [[home]]",
	}

	idx := index.NewIndex()
	for name, content := range notes {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if err := idx.Update(path, markdown.Parse(content)); err != nil {
			t.Fatal(err)
		}
	}
	return idx, dir
}

func TestNewBrowseData(t *testing.T) {
	idx, dir := testIndex(t)

	data := NewBrowseData(idx, dir)

	if len(data.Notes) != 2 {
		t.Fatalf("Expected 2 notes, got %d", len(data.Notes))
	}

	// Paths are sorted: garden.md before home.md
	garden, home := data.Notes[0], data.Notes[1]
	if garden.RelPath != "garden.md" || home.RelPath != "home.md" {
		t.Fatalf("Unexpected order: %q, %q", garden.RelPath, home.RelPath)
	}
	if home.Links != 2 || home.Dangling != 1 {
		t.Errorf("home: links %d dangling %d, want 2 and 1", home.Links, home.Dangling)
	}
	if len(garden.Backlinks) != 1 || garden.Backlinks[0] != home.Path {
		t.Errorf("garden backlinks = %v, want [%s]", garden.Backlinks, home.Path)
	}
	if garden.Title != "Garden" {
		t.Errorf("garden title = %q", garden.Title)
	}
}

func TestBrowseModelOpenAndClose(t *testing.T) {
	idx, dir := testIndex(t)

	var model tea.Model = InitBrowseModel(false)
	model, _ = model.Update(BrowseMsg{Data: NewBrowseData(idx, dir)})

	view := model.View()
	if !strings.Contains(view, "Indexed Notes: 2") {
		t.Errorf("table view missing note count:\n%s", view)
	}

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected preview command on enter")
	}
	msg := cmd()
	preview, ok := msg.(PreviewMsg)
	if !ok {
		t.Fatalf("Expected PreviewMsg, got %T", msg)
	}
	if preview.Err != nil {
		t.Fatalf("Preview failed: %v", preview.Err)
	}
	if !strings.Contains(preview.Content, "Garden") || !strings.Contains(preview.Content, "Backlinks: 1") {
		t.Errorf("Preview content unexpected:\n%s", preview.Content)
	}

	model, _ = model.Update(preview)
	if !strings.Contains(model.View(), "Note: garden.md") {
		t.Errorf("note view missing header:\n%s", model.View())
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !strings.Contains(model.View(), "Indexed Notes: 2") {
		t.Errorf("esc should return to table:\n%s", model.View())
	}

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit from the table view")
	}
}

func TestBrowseModelError(t *testing.T) {
	var model tea.Model = InitBrowseModel(false)
	model, _ = model.Update(BrowseMsg{Err: os.ErrNotExist})

	if !strings.Contains(model.View(), "Error") {
		t.Errorf("Expected error view, got:\n%s", model.View())
	}
}

func TestNotePreviewNested(t *testing.T) {
	out := notePreview(markdown.Parse("# A\nchild"), nil, true, lipgloss.NewRenderer(io.Discard))

	if !strings.Contains(out, "  | child") {
		t.Errorf("Expected indented child in nested preview:\n%s", out)
	}
	if !strings.Contains(out, "Backlinks: 0") {
		t.Errorf("Expected backlink count:\n%s", out)
	}
}
