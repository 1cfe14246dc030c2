package escape

import "sort"

// Node is a piece of HTML that can be rendered.
type Node interface {
	AppendHTML([]byte) []byte
}

// String is text content, escaped when rendered.
type String string

// AppendHTML appends the escaped text to b.
func (s String) AppendHTML(b []byte) []byte {
	return append(b, HTMLString(string(s))...)
}

// Raw is markup that is rendered as is.
type Raw string

// AppendHTML appends the markup to b.
func (r Raw) AppendHTML(b []byte) []byte {
	return append(b, string(r)...)
}

// Tag is an HTML element. Attributes are rendered sorted by name with escaped values. A nil Inner renders a self-closing tag.
type Tag struct {
	Name  string
	Attrs map[string]string
	Inner Node
}

// AppendHTML appends the rendered element to b.
func (t Tag) AppendHTML(b []byte) []byte {
	b = append(b, '<')
	b = append(b, t.Name...)

	keys := make([]string, 0, len(t.Attrs))
	for k := range t.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b = append(b, ' ')
		b = append(b, k...)
		b = append(b, '=', '"')
		b = append(b, HTMLString(t.Attrs[k])...)
		b = append(b, '"')
	}

	if t.Inner == nil {
		return append(b, " />"...)
	}
	b = append(b, '>')
	b = t.Inner.AppendHTML(b)
	b = append(b, '<', '/')
	b = append(b, t.Name...)
	return append(b, '>')
}

func (t Tag) String() string {
	return string(t.AppendHTML(nil))
}

// Fragment is a sequence of nodes rendered one after the other.
type Fragment []Node

// AppendHTML appends every node to b.
func (f Fragment) AppendHTML(b []byte) []byte {
	for _, n := range f {
		b = n.AppendHTML(b)
	}
	return b
}

func (f Fragment) String() string {
	return string(f.AppendHTML(nil))
}
