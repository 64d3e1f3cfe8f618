package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/wikidoc/internal/index"
	"github.com/gerunddev/wikidoc/internal/markdown"
	"github.com/gerunddev/wikidoc/internal/render"
	"github.com/gerunddev/wikidoc/internal/styles"
)

var (
	titleStyle = styles.TitleStyle
	errorStyle = styles.ErrorStyle
	labelStyle = styles.LabelStyle
	helpStyle  = styles.HelpStyle
	linkStyle  = styles.LinkStyle
	tableStyle = styles.TableStyle
)

// BrowseData holds all indexed notes
type BrowseData struct {
	Notes []NoteInfo
}

// NoteInfo represents one indexed note with its link counts
type NoteInfo struct {
	Path      string
	RelPath   string
	Title     string
	Links     int
	Backlinks []string
	Dangling  int
}

// BrowseMsg is sent when browse data is ready
type BrowseMsg struct {
	Data *BrowseData
	Err  error
}

// PreviewMsg is sent when a note outline is ready
type PreviewMsg struct {
	Content string
	Err     error
}

// NewBrowseData builds browse rows from the index
func NewBrowseData(idx *index.Index, notesDir string) *BrowseData {
	dangling := idx.Dangling()
	danglingBySource := make(map[string]int)
	for _, sources := range dangling {
		for _, source := range sources {
			danglingBySource[source]++
		}
	}

	data := &BrowseData{}
	for _, path := range idx.Paths() {
		fs := idx.Files[path]
		rel, err := filepath.Rel(notesDir, path)
		if err != nil {
			rel = path
		}
		data.Notes = append(data.Notes, NoteInfo{
			Path:      path,
			RelPath:   rel,
			Title:     fs.Title,
			Links:     len(fs.Links),
			Backlinks: idx.BacklinksTo(path),
			Dangling:  danglingBySource[path],
		})
	}
	return data
}

type browseModel struct {
	table        table.Model
	viewport     viewport.Model
	data         *BrowseData
	err          error
	ready        bool
	showingNote  bool
	preview      string
	width        int
	height       int
	selectedNote *NoteInfo
	nest         bool
}

// InitBrowseModel creates a new note browser model
func InitBrowseModel(nest bool) browseModel {
	columns := []table.Column{
		{Title: "Note", Width: 40},
		{Title: "Title", Width: 30},
		{Title: "Links", Width: 7},
		{Title: "Backlinks", Width: 10},
		{Title: "Dangling", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(styles.Background)).
		Background(lipgloss.Color(styles.Yellow)).
		Bold(false)
	t.SetStyles(ts)

	vp := viewport.New(100, 20)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		Padding(1)

	return browseModel{
		table:    t,
		viewport: vp,
		nest:     nest,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 10)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6

	case tea.KeyMsg:
		if m.showingNote {
			switch msg.String() {
			case "q", "esc":
				m.showingNote = false
				return m, nil
			case "up", "k", "down", "j":
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k", "down", "j":
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		case "enter":
			if m.data != nil && len(m.data.Notes) > 0 {
				selectedIdx := m.table.Cursor()
				if selectedIdx < len(m.data.Notes) {
					m.selectedNote = &m.data.Notes[selectedIdx]
					m.showingNote = true
					return m, m.loadPreview()
				}
			}
			return m, nil
		}

	case BrowseMsg:
		m.ready = true
		m.data = msg.Data
		m.err = msg.Err

		if m.data != nil {
			rows := make([]table.Row, 0, len(m.data.Notes))
			for _, note := range m.data.Notes {
				rows = append(rows, table.Row{
					note.RelPath,
					note.Title,
					fmt.Sprintf("%d", note.Links),
					fmt.Sprintf("%d", len(note.Backlinks)),
					fmt.Sprintf("%d", note.Dangling),
				})
			}
			m.table.SetRows(rows)
		}
		return m, nil

	case PreviewMsg:
		m.preview = msg.Content
		if msg.Err != nil {
			m.preview = errorStyle.Render("✗ " + msg.Err.Error())
		}
		m.viewport.SetContent(m.preview)
		m.viewport.GotoTop()
		return m, nil
	}

	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wikidoc Note Browser"))
	b.WriteString("\n\n")

	if m.err != nil {
		return errorStyle.Render("✗ Error: "+m.err.Error()) + "\n"
	}

	if !m.ready || m.data == nil {
		return b.String()
	}

	if m.showingNote && m.selectedNote != nil {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Note: %s", m.selectedNote.RelPath)))
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/k up • ↓/j down • esc/q back"))
		b.WriteString("\n")
	} else {
		b.WriteString(labelStyle.Render(fmt.Sprintf("Indexed Notes: %d", len(m.data.Notes))))
		b.WriteString("\n\n")
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/k up • ↓/j down • enter open • q quit"))
		b.WriteString("\n")
	}

	return b.String()
}

// loadPreview creates a command that parses the selected note and renders
// its outline followed by its backlinks
func (m browseModel) loadPreview() tea.Cmd {
	note := m.selectedNote
	nest := m.nest
	return func() tea.Msg {
		if note == nil {
			return PreviewMsg{Err: fmt.Errorf("no note selected")}
		}
		content, err := os.ReadFile(note.Path)
		if err != nil {
			return PreviewMsg{Err: fmt.Errorf("failed to read note: %w", err)}
		}
		doc := markdown.Parse(string(content))
		return PreviewMsg{Content: notePreview(doc, note.Backlinks, nest, lipgloss.DefaultRenderer())}
	}
}

func notePreview(doc markdown.Document, backlinks []string, nest bool, r *lipgloss.Renderer) string {
	if nest {
		doc = markdown.Nest(doc)
	}

	var b strings.Builder
	b.WriteString(render.Outline(doc, r))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Backlinks: %d", len(backlinks))))
	b.WriteString("\n")
	for _, path := range backlinks {
		b.WriteString("  ")
		b.WriteString(linkStyle.Render(path))
		b.WriteString("\n")
	}
	return b.String()
}

// RunBrowse starts the note browser program
func RunBrowse(data *BrowseData, nest bool) error {
	p := tea.NewProgram(InitBrowseModel(nest), tea.WithAltScreen())
	go p.Send(BrowseMsg{Data: data})
	_, err := p.Run()
	return err
}
