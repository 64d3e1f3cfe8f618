package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	// Base colors
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	// Accent colors
	Red     = "#FF6188" // Errors
	Orange  = "#FC9867" // Warnings, dangling links
	Yellow  = "#FFD866" // Headings
	Green   = "#A9DC76" // Success, bullets
	Cyan    = "#78DCE8" // Info
	Blue    = "#AB9DF2" // Links
	Magenta = "#FF6188" // Titles

	// UI colors
	Comment = "#727072" // Dim text, help
	Border  = "#5B595C" // Borders, separators
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	LinkStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Blue))
	HelpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	LabelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))

	// Table/list styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Magenta))

	TableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(Border))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Background)).
			Background(lipgloss.Color(Yellow))
)

// Outline holds the styles used for a document outline. They are bound to a
// renderer so color output follows the destination writer, not stdout.
type Outline struct {
	Heading lipgloss.Style
	Bullet  lipgloss.Style
	Text    lipgloss.Style
	Link    lipgloss.Style
	Marker  lipgloss.Style
}

// NewOutline builds outline styles for the given renderer
func NewOutline(r *lipgloss.Renderer) Outline {
	return Outline{
		Heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color(Yellow)),
		Bullet:  r.NewStyle().Foreground(lipgloss.Color(Green)),
		Text:    r.NewStyle().Foreground(lipgloss.Color(Foreground)),
		Link:    r.NewStyle().Foreground(lipgloss.Color(Blue)),
		Marker:  r.NewStyle().Foreground(lipgloss.Color(Comment)),
	}
}
