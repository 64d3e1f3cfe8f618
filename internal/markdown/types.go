package markdown

// Kind identifies the variant of an Element
type Kind int

const (
	KindHeading Kind = iota + 1
	KindBulletList
	KindText
)

// String returns the lowercase name used in rendered output
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindBulletList:
		return "bullet_list"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// InlineText is a text payload paired with the link targets found on its line
type InlineText struct {
	Content string
	Links   []string
}

// Element is one structural unit of a Document.
// Implemented by *Heading, *BulletList and *Text only.
type Element interface {
	Kind() Kind
	isElement()
}

// Heading is a line starting with one or more '#' characters.
// Children stays empty unless the document went through Nest.
type Heading struct {
	Level    int
	Title    InlineText
	Children []Element
}

// BulletList is a line starting with '-'. Each line yields a single item.
type BulletList struct {
	Items []InlineText
}

// Text is any non-blank line that is neither a heading nor a bullet
type Text struct {
	InlineText
}

func (*Heading) Kind() Kind    { return KindHeading }
func (*BulletList) Kind() Kind { return KindBulletList }
func (*Text) Kind() Kind       { return KindText }

func (*Heading) isElement()    {}
func (*BulletList) isElement() {}
func (*Text) isElement()       {}

// Document is the ordered result of parsing one input text
type Document struct {
	Elements []Element
}

// Walk visits every element in pre-order, descending into heading children.
// Returning false from fn stops the walk.
func (d Document) Walk(fn func(el Element, depth int) bool) {
	walk(d.Elements, 0, fn)
}

func walk(elements []Element, depth int, fn func(Element, int) bool) bool {
	for _, el := range elements {
		if !fn(el, depth) {
			return false
		}
		if h, ok := el.(*Heading); ok && len(h.Children) > 0 {
			if !walk(h.Children, depth+1, fn) {
				return false
			}
		}
	}
	return true
}

// Links returns every link target in the document, in source order
func (d Document) Links() []string {
	var links []string
	d.Walk(func(el Element, _ int) bool {
		links = append(links, ElementLinks(el)...)
		return true
	})
	return links
}

// ElementLinks returns the link targets carried by a single element,
// not including those of heading children.
func ElementLinks(el Element) []string {
	switch e := el.(type) {
	case *Heading:
		return e.Title.Links
	case *BulletList:
		var links []string
		for _, item := range e.Items {
			links = append(links, item.Links...)
		}
		return links
	case *Text:
		return e.Links
	}
	return nil
}

// Len returns the number of elements, counting nested children
func (d Document) Len() int {
	n := 0
	d.Walk(func(Element, int) bool {
		n++
		return true
	})
	return n
}
