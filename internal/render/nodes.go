package render

import "github.com/gerunddev/wikidoc/internal/markdown"

// documentNode is the serialized form of a document
type documentNode struct {
	Elements []any `json:"elements" yaml:"elements"`
}

type inlineNode struct {
	Content string   `json:"content" yaml:"content"`
	Links   []string `json:"links" yaml:"links"`
}

type headingNode struct {
	Type     string     `json:"type" yaml:"type"`
	Level    int        `json:"level" yaml:"level"`
	Title    inlineNode `json:"title" yaml:"title"`
	Children []any      `json:"children" yaml:"children"`
}

type bulletListNode struct {
	Type  string       `json:"type" yaml:"type"`
	Items []inlineNode `json:"items" yaml:"items"`
}

type textNode struct {
	Type    string   `json:"type" yaml:"type"`
	Content string   `json:"content" yaml:"content"`
	Links   []string `json:"links" yaml:"links"`
}

func toNodes(doc markdown.Document) documentNode {
	return documentNode{Elements: elementNodes(doc.Elements)}
}

func elementNodes(elements []markdown.Element) []any {
	nodes := make([]any, 0, len(elements))
	for _, el := range elements {
		switch e := el.(type) {
		case *markdown.Heading:
			nodes = append(nodes, headingNode{
				Type:     e.Kind().String(),
				Level:    e.Level,
				Title:    toInline(e.Title),
				Children: elementNodes(e.Children),
			})
		case *markdown.BulletList:
			items := make([]inlineNode, 0, len(e.Items))
			for _, item := range e.Items {
				items = append(items, toInline(item))
			}
			nodes = append(nodes, bulletListNode{Type: e.Kind().String(), Items: items})
		case *markdown.Text:
			t := toInline(e.InlineText)
			nodes = append(nodes, textNode{Type: e.Kind().String(), Content: t.Content, Links: t.Links})
		}
	}
	return nodes
}

// toInline keeps links as a list even when there are none
func toInline(t markdown.InlineText) inlineNode {
	links := t.Links
	if links == nil {
		links = []string{}
	}
	return inlineNode{Content: t.Content, Links: links}
}
