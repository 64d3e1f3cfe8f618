package logger

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestEventHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.DebugLevel)

	l.IndexStarted("/notes")
	l.DocumentParsed("a.md", 3, 2)
	l.DanglingLink("a.md", "Missing")
	l.FileError("b.md", errors.New("boom"))
	l.IndexCompleted(2, 1, 1500*time.Millisecond)

	out := buf.String()
	for _, want := range []string{
		"index started",
		"notes_dir=/notes",
		"document parsed",
		"links=2",
		"dangling link",
		"target=Missing",
		"error=boom",
		"index completed",
		"files_indexed=2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestDefaultLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Skipped("x.md", "excluded")

	if buf.Len() != 0 {
		t.Errorf("Expected debug output to be suppressed, got %q", buf.String())
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wikidoc.log")

	l, cleanup, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	l.IndexStarted("/notes")
	cleanup()

	if _, _, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Error("Expected error for missing directory")
	}
}
