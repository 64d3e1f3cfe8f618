// Package render writes parsed documents as an outline, JSON, YAML,
// normalized markdown, or glamour-styled terminal output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/wikidoc/internal/markdown"
	"github.com/gerunddev/wikidoc/internal/styles"
	"gopkg.in/yaml.v3"
)

// Format represents an output format
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatPretty   Format = "pretty"
)

// Formats lists every supported format name
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatPretty}

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format '%s': must be one of: text, json, yaml, markdown, pretty", name)
}

// Render writes doc to w in the given format
func Render(w io.Writer, doc markdown.Document, format Format) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, Outline(doc, lipgloss.NewRenderer(w)))
		return err
	case FormatJSON:
		data, err := json.MarshalIndent(toNodes(doc), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toNodes(doc)); err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(doc))
		return err
	case FormatPretty:
		out, err := Pretty(doc)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return fmt.Errorf("unsupported format: %q", format)
	}
}

// Outline renders the document as an indented outline, one element per line.
// Pass a renderer bound to a non-terminal writer for uncolored output.
func Outline(doc markdown.Document, r *lipgloss.Renderer) string {
	st := styles.NewOutline(r)
	var b strings.Builder

	doc.Walk(func(el markdown.Element, depth int) bool {
		indent := strings.Repeat("  ", depth)

		switch e := el.(type) {
		case *markdown.Heading:
			marker := fmt.Sprintf("h%d", e.Level)
			writeOutlineLine(&b, indent, st.Heading.Render(marker), st.Heading, e.Title, st)
		case *markdown.BulletList:
			for _, item := range e.Items {
				writeOutlineLine(&b, indent, st.Bullet.Render("-"), st.Text, item, st)
			}
		case *markdown.Text:
			writeOutlineLine(&b, indent, st.Marker.Render("|"), st.Text, e.InlineText, st)
		}
		return true
	})

	return b.String()
}

func writeOutlineLine(b *strings.Builder, indent, marker string, contentStyle lipgloss.Style, t markdown.InlineText, st styles.Outline) {
	b.WriteString(indent)
	b.WriteString(marker)
	if t.Content != "" {
		b.WriteString(" ")
		b.WriteString(contentStyle.Render(t.Content))
	}
	if len(t.Links) > 0 {
		b.WriteString("  ")
		b.WriteString(st.Marker.Render("->"))
		b.WriteString(" ")
		b.WriteString(st.Link.Render(strings.Join(t.Links, ", ")))
	}
	b.WriteString("\n")
}

// Markdown renders the document back into the note dialect.
// Parsing the result yields the same flat document.
func Markdown(doc markdown.Document) string {
	var b strings.Builder

	doc.Walk(func(el markdown.Element, _ int) bool {
		switch e := el.(type) {
		case *markdown.Heading:
			b.WriteString(strings.Repeat("#", e.Level))
			b.WriteString(" ")
			b.WriteString(e.Title.Content)
			b.WriteString("\n")
		case *markdown.BulletList:
			for _, item := range e.Items {
				b.WriteString("- ")
				b.WriteString(item.Content)
				b.WriteString("\n")
			}
		case *markdown.Text:
			b.WriteString(e.Content)
			b.WriteString("\n")
		}
		return true
	})

	return b.String()
}

// Pretty renders the document's markdown with glamour for the terminal
func Pretty(doc markdown.Document) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := renderer.Render(Markdown(doc))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
