package markdown

import (
	"reflect"
	"strings"
	"testing"
)

func heading(level int, content string, links ...string) *Heading {
	return &Heading{
		Level:    level,
		Title:    InlineText{Content: content, Links: linksOrNil(links)},
		Children: []Element{},
	}
}

func bullet(content string, links ...string) *BulletList {
	return &BulletList{Items: []InlineText{{Content: content, Links: linksOrNil(links)}}}
}

func text(content string, links ...string) *Text {
	return &Text{InlineText: InlineText{Content: content, Links: linksOrNil(links)}}
}

func linksOrNil(links []string) []string {
	if len(links) == 0 {
		return nil
	}
	return links
}

func TestParse(t *testing.T) {
	input := "# Heading 1\n- List item\n[[Link]] with text\nText with [[Another Link]]"

	doc := Parse(input)

	expected := []Element{
		heading(1, "Heading 1"),
		bullet("List item"),
		text("[[Link]] with text", "Link"),
		text("Text with [[Another Link]]", "Another Link"),
	}

	if !reflect.DeepEqual(doc.Elements, expected) {
		t.Errorf("Parse mismatch.\n\nExpected:\n%s\n\nGot:\n%s", dump(expected), dump(doc.Elements))
	}
}

func TestParseWithLinks(t *testing.T) {
	input := "# Heading with [[Link1]] and [[Link2]]\n- List item with [[Link3]]\nText with [[Link4]]"

	doc := Parse(input)

	expected := []Element{
		heading(1, "Heading with [[Link1]] and [[Link2]]", "Link1", "Link2"),
		bullet("List item with [[Link3]]", "Link3"),
		text("Text with [[Link4]]", "Link4"),
	}

	if !reflect.DeepEqual(doc.Elements, expected) {
		t.Errorf("Parse mismatch.\n\nExpected:\n%s\n\nGot:\n%s", dump(expected), dump(doc.Elements))
	}
}

func TestParseMultiLevelHeadings(t *testing.T) {
	input := "# Top Level Heading\n## Second Level Heading\n### Third Level Heading with [[Link]]"

	doc := Parse(input)

	expected := []Element{
		heading(1, "Top Level Heading"),
		heading(2, "Second Level Heading"),
		heading(3, "Third Level Heading with [[Link]]", "Link"),
	}

	if !reflect.DeepEqual(doc.Elements, expected) {
		t.Errorf("Parse mismatch.\n\nExpected:\n%s\n\nGot:\n%s", dump(expected), dump(doc.Elements))
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Element
	}{
		{
			name:     "level 3 heading",
			input:    "### text",
			expected: heading(3, "text"),
		},
		{
			name:     "heading without space",
			input:    "##Title",
			expected: heading(2, "Title"),
		},
		{
			name:     "bare hashes",
			input:    "###",
			expected: heading(3, ""),
		},
		{
			name:     "bullet keeps bracket markup",
			input:    "- buy milk [[Store]]",
			expected: bullet("buy milk [[Store]]", "Store"),
		},
		{
			name:     "bullet without space",
			input:    "-item",
			expected: bullet("item"),
		},
		{
			name:     "bare dash",
			input:    "-",
			expected: bullet(""),
		},
		{
			name:     "heading wins over bullet text",
			input:    "# - not a bullet",
			expected: heading(1, "- not a bullet"),
		},
		{
			name:     "unterminated link falls back to plain",
			input:    "[[incomplete",
			expected: text("[[incomplete"),
		},
		{
			name:     "link-bearing text keeps content",
			input:    "[[A]] middle [[A]]",
			expected: text("[[A]] middle [[A]]", "A", "A"),
		},
		{
			name:     "plain text",
			input:    "This is plain text",
			expected: text("This is plain text"),
		},
		{
			name:     "star is not a bullet",
			input:    "* item",
			expected: text("* item"),
		},
		{
			name:     "empty line",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := classifyLine(tt.input)
			if !reflect.DeepEqual(actual, tt.expected) {
				t.Errorf("classifyLine(%q) = %s, want %s", tt.input, dump([]Element{actual}), dump([]Element{tt.expected}))
			}
		})
	}
}

func TestParseDropsBlankLines(t *testing.T) {
	input := "\n\n# Title\n   \n\t\nbody\n\n"

	doc := Parse(input)

	if len(doc.Elements) != 2 {
		t.Fatalf("Expected 2 elements, got %d", len(doc.Elements))
	}
	if doc.Elements[0].Kind() != KindHeading {
		t.Errorf("Expected heading first, got %s", doc.Elements[0].Kind())
	}
	if doc.Elements[1].Kind() != KindText {
		t.Errorf("Expected text second, got %s", doc.Elements[1].Kind())
	}
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "\n", "   ", "\r\n\r\n"} {
		doc := Parse(input)
		if len(doc.Elements) != 0 {
			t.Errorf("Parse(%q) produced %d elements, want 0", input, len(doc.Elements))
		}
	}
}

func TestParseCRLF(t *testing.T) {
	doc := Parse("# Title\r\n- item [[X]]\r\n")

	expected := []Element{
		heading(1, "Title"),
		bullet("item [[X]]", "X"),
	}

	if !reflect.DeepEqual(doc.Elements, expected) {
		t.Errorf("Parse mismatch.\n\nExpected:\n%s\n\nGot:\n%s", dump(expected), dump(doc.Elements))
	}
}

func TestParseWhitespaceIdempotence(t *testing.T) {
	lines := []string{
		"## Section [[Ref]]",
		"- item",
		"[[Link]] text",
		"plain",
	}

	for _, line := range lines {
		bare := Parse(line)
		padded := Parse("   \t" + line + "  \t ")
		if !reflect.DeepEqual(bare, padded) {
			t.Errorf("Padding changed result for %q.\n\nBare:\n%s\n\nPadded:\n%s",
				line, dump(bare.Elements), dump(padded.Elements))
		}
	}
}

func TestParseLineCountBound(t *testing.T) {
	inputs := []string{
		"a\nb\nc",
		"a\n\nc",
		"# h\n- b\n\n[[x]]\n   \n",
		"[[\n]]\n#\n-",
	}

	for _, input := range inputs {
		lines := strings.Split(input, "\n")
		nonBlank := 0
		for _, l := range lines {
			if strings.TrimSpace(l) != "" {
				nonBlank++
			}
		}

		doc := Parse(input)
		if len(doc.Elements) != nonBlank {
			t.Errorf("Parse(%q) produced %d elements, want %d", input, len(doc.Elements), nonBlank)
		}
		if len(doc.Elements) > len(lines) {
			t.Errorf("Parse(%q) produced more elements than lines", input)
		}
	}
}

func TestParseOrderPreservation(t *testing.T) {
	input := "one\n# two\n- three\nfour [[five]]"

	doc := Parse(input)

	want := []string{"one", "two", "three", "four [[five]]"}
	if len(doc.Elements) != len(want) {
		t.Fatalf("Expected %d elements, got %d", len(want), len(doc.Elements))
	}
	for i, el := range doc.Elements {
		if got := contentOf(el); got != want[i] {
			t.Errorf("element %d content = %q, want %q", i, got, want[i])
		}
	}
}

func TestDocumentLinks(t *testing.T) {
	doc := Parse("# Top [[A]]\n- item [[B]] [[C]]\nnothing\n[[A]]")

	links := doc.Links()
	expected := []string{"A", "B", "C", "A"}
	if !reflect.DeepEqual(links, expected) {
		t.Errorf("Links() = %q, want %q", links, expected)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindHeading:    "heading",
		KindBulletList: "bullet_list",
		KindText:       "text",
		Kind(0):        "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}

func contentOf(el Element) string {
	switch e := el.(type) {
	case *Heading:
		return e.Title.Content
	case *BulletList:
		return e.Items[0].Content
	case *Text:
		return e.Content
	}
	return ""
}

func dump(elements []Element) string {
	var b strings.Builder
	var write func(els []Element, indent string)
	write = func(els []Element, indent string) {
		for _, el := range els {
			if el == nil {
				b.WriteString(indent + "<nil>\n")
				continue
			}
			b.WriteString(indent + el.Kind().String() + " " + contentOf(el) + " " + strings.Join(ElementLinks(el), ",") + "\n")
			if h, ok := el.(*Heading); ok {
				write(h.Children, indent+"  ")
			}
		}
	}
	write(elements, "")
	return b.String()
}
