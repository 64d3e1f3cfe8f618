// Package markdown parses the line-oriented note dialect: '#' headings,
// '-' bullets and free text, each carrying its [[wiki-link]] targets.
package markdown

import (
	"strings"
)

// Parse converts input into a Document with one element per non-blank line.
// Parse never fails; malformed markup falls through to plain text.
func Parse(input string) Document {
	lines := strings.Split(input, "\n")
	doc := Document{Elements: make([]Element, 0, len(lines))}

	for _, line := range lines {
		// TrimSpace also drops the '\r' of CRLF input
		if el := classifyLine(strings.TrimSpace(line)); el != nil {
			doc.Elements = append(doc.Elements, el)
		}
	}

	return doc
}

// classifyLine maps one trimmed line to an element, or nil for an empty line.
// Structural prefixes win over link detection.
func classifyLine(line string) Element {
	if line == "" {
		return nil
	}
	if h := parseHeading(line); h != nil {
		return h
	}
	if b := parseBullet(line); b != nil {
		return b
	}

	links := ExtractLinks(line)
	return &Text{InlineText: InlineText{Content: line, Links: links}}
}

func parseHeading(line string) *Heading {
	level := countLeadingChars(line, '#')
	if level == 0 {
		return nil
	}

	return &Heading{
		Level: level,
		Title: InlineText{
			Content: strings.TrimSpace(line[level:]),
			Links:   ExtractLinks(line),
		},
		Children: []Element{},
	}
}

func parseBullet(line string) *BulletList {
	if !strings.HasPrefix(line, "-") {
		return nil
	}

	return &BulletList{
		Items: []InlineText{{
			Content: strings.TrimSpace(line[1:]),
			Links:   ExtractLinks(line),
		}},
	}
}

// countLeadingChars counts consecutive occurrences of ch at the start of s
func countLeadingChars(s string, ch byte) int {
	n := 0
	for n < len(s) && s[n] == ch {
		n++
	}
	return n
}
