package rendering

import (
	"io"
	"strings"
)

// NodeKind distinguishes elements from text
type NodeKind int

// Node kinds
const (
	ElementNode NodeKind = iota
	TextNode
	RawNode
	FragmentNode
)

// Attr is a single attribute. Order is preserved so output is deterministic.
type Attr struct {
	Key   string
	Value string
}

// Node is one element of the intermediate tree shared by every renderer.
// Text and attribute values are escaped only when the tree is serialized.
type Node struct {
	Kind     NodeKind
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// El builds an element. Children may be nil, which are dropped; this is how optional sections disappear.
func El(tag string, attrs []Attr, children ...*Node) *Node {
	n := &Node{Kind: ElementNode, Tag: tag, Attrs: attrs}
	n.Append(children...)
	return n
}

// Text builds an escaped text node
func Text(s string) *Node {
	return &Node{Kind: TextNode, Text: s}
}

// Raw builds a node that is written verbatim. Only constant stylesheet and script bodies use it.
func Raw(s string) *Node {
	return &Node{Kind: RawNode, Text: s}
}

// Fragment groups children without a wrapping element
func Fragment(children ...*Node) *Node {
	n := &Node{Kind: FragmentNode}
	n.Append(children...)
	return n
}

// Append adds non-nil children
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
}

// A builds an attribute list from key/value pairs. A trailing odd key is ignored.
func A(kv ...string) []Attr {
	attrs := make([]Attr, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, Attr{Key: kv[i], Value: kv[i+1]})
	}
	return attrs
}

// Get returns the value of an attribute
func (n *Node) Get(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Set replaces or adds an attribute
func (n *Node) Set(key, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
}

// Walk visits n and its descendants depth-first. Returning false skips a subtree.
func (n *Node) Walk(visit func(*Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Find returns every element for which match is true
func (n *Node) Find(match func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Kind == ElementNode && match(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// TextContent returns the concatenated text of n, unescaped.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Kind == TextNode {
			sb.WriteString(c.Text)
		}
		return c.Kind != RawNode
	})
	return sb.String()
}

// HTML serializes the tree
func (n *Node) HTML() string {
	var sb strings.Builder
	_ = Render(&sb, n)
	return sb.String()
}

// Render writes the serialized tree to w. This is the only place text becomes markup.
func Render(w io.Writer, n *Node) error {
	sw := &stickyWriter{w: w}
	writeNode(sw, n)
	return sw.err
}

func writeNode(w *stickyWriter, n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case TextNode:
		w.write(EscapeMarkup(n.Text))
	case RawNode:
		w.write(n.Text)
	case FragmentNode:
		for _, c := range n.Children {
			writeNode(w, c)
		}
	case ElementNode:
		w.write("<")
		w.write(n.Tag)
		for _, a := range n.Attrs {
			w.write(" ")
			w.write(a.Key)
			w.write(`="`)
			w.write(EscapeMarkup(a.Value))
			w.write(`"`)
		}
		if voidElements[n.Tag] {
			w.write(" />")
			return
		}
		w.write(">")
		for _, c := range n.Children {
			writeNode(w, c)
		}
		w.write("</")
		w.write(n.Tag)
		w.write(">")
	}
}

// stickyWriter keeps the first write error and drops later writes
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}
