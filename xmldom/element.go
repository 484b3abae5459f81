// Package xmldom builds minimal immutable element trees from XML documents.
// The trees satisfy the query surface of the root minidomext package.
package xmldom

import (
	minidomext "github.com/hove-io/minidom-ext"
)

var _ minidomext.Element[*Element] = (*Element)(nil)

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Element is one element of a parsed document. Elements are created by Parse
// or New and are not mutated by queries.
type Element struct {
	name     string
	attrs    []Attr
	text     string
	children []*Element
}

// New creates a standalone element, mainly useful for building small trees
// by hand.
func New(name string, attrs ...Attr) *Element {
	el := &Element{name: name}
	for _, a := range attrs {
		el.setAttr(a.Name, a.Value)
	}
	return el
}

// AppendChild adds c as the last direct child of e.
func (e *Element) AppendChild(c *Element) {
	e.children = append(e.children, c)
}

// Name returns the element's local tag name.
func (e *Element) Name() string { return e.name }

// Attr returns the value of the named attribute, and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns the element's attributes in document order.
func (e *Element) Attrs() []Attr { return e.attrs }

// NumChildren returns the number of direct child elements.
func (e *Element) NumChildren() int { return len(e.children) }

// Child returns the i-th direct child element.
func (e *Element) Child(i int) *Element { return e.children[i] }

// Text returns the element's own character data, concatenated in document
// order. Text of child elements is not included.
func (e *Element) Text() string { return e.text }

// setAttr records an attribute; a repeated name overwrites the earlier value.
func (e *Element) setAttr(name, value string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}
