package markdown

import "slices"

// Nest returns a new document where each element following a heading is
// moved under the nearest preceding heading of a lower level. A heading
// closes every open heading with the same or a higher level.
// The input document is not modified. Nest(Nest(d)) equals Nest(d).
func Nest(doc Document) Document {
	flat := Flatten(doc)
	out := Document{Elements: make([]Element, 0, len(flat.Elements))}

	// open headings, outermost first
	var stack []*Heading

	for _, el := range flat.Elements {
		h, isHeading := el.(*Heading)
		if isHeading {
			for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
				stack = stack[:len(stack)-1]
			}
		}

		if len(stack) == 0 {
			out.Elements = append(out.Elements, el)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, el)
		}

		if isHeading {
			stack = append(stack, h)
		}
	}

	return out
}

// Flatten returns a copy of doc with all heading children hoisted back into
// document order, as produced by Parse.
func Flatten(doc Document) Document {
	out := Document{Elements: make([]Element, 0, doc.Len())}
	doc.Walk(func(el Element, _ int) bool {
		out.Elements = append(out.Elements, cloneElement(el))
		return true
	})
	return out
}

// cloneElement copies el without its children
func cloneElement(el Element) Element {
	switch e := el.(type) {
	case *Heading:
		return &Heading{
			Level:    e.Level,
			Title:    cloneInline(e.Title),
			Children: []Element{},
		}
	case *BulletList:
		items := make([]InlineText, len(e.Items))
		for i, item := range e.Items {
			items[i] = cloneInline(item)
		}
		return &BulletList{Items: items}
	case *Text:
		return &Text{InlineText: cloneInline(e.InlineText)}
	}
	return el
}

func cloneInline(t InlineText) InlineText {
	return InlineText{Content: t.Content, Links: slices.Clone(t.Links)}
}
