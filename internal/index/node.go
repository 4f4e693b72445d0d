// Package index builds the ReaPack index.xml tree from a decoded TOML
// document and serializes it.
package index

import (
	"bytes"
	"encoding/xml"
	"io"
)

// Attr is one XML attribute
type Attr struct {
	Name  string
	Value string
}

// Node is an element of the output tree. Attributes are written in order.
// When CDATA is set, Text is written as a CDATA section instead of escaped
// character data.
type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	CDATA    bool
	Children []*Node
}

// NewNode creates a node with the given name and attribute pairs
func NewNode(name string, attrs ...Attr) *Node {
	return &Node{Name: name, Attrs: attrs}
}

// SetAttr sets or replaces an attribute
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// Attr returns the value of an attribute
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Append adds children and returns n
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// AppendText adds a child holding text and returns the child
func (n *Node) AppendText(name, text string, attrs ...Attr) *Node {
	child := NewNode(name, attrs...)
	child.Text = text
	n.Append(child)
	return child
}

// Find returns the direct children named name
func (n *Node) Find(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

type cdataText struct {
	Text string `xml:",cdata"`
}

// MarshalXML implements xml.Marshaler
func (n *Node) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	if n.CDATA {
		return e.EncodeElement(cdataText{Text: n.Text}, start)
	}

	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := e.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := e.Encode(c); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// Encode writes root as an indented UTF-8 XML document
func Encode(w io.Writer, root *Node) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// Marshal returns the encoded document
func Marshal(root *Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
