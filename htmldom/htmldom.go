// Package htmldom adapts golang.org/x/net/html nodes to the query surface of
// the root minidomext package. Only element nodes are visible through the
// adapter; text, comments and doctypes are skipped.
package htmldom

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	minidomext "github.com/hove-io/minidom-ext"
)

var _ minidomext.Element[Node] = Node{}

// Node is a read-only view over one HTML element. The zero Node is not
// valid; obtain one from Parse, FromNode or FromSelection.
type Node struct {
	n *html.Node
}

// Parse reads an HTML document from r and returns its root element
// (normally <html>; the parser inserts it when absent).
func Parse(r io.Reader) (Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Node{}, fmt.Errorf("could not parse document: %w", err)
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return Node{n: c}, nil
		}
	}
	return Node{}, fmt.Errorf("no root element")
}

// FromNode wraps an element node. It reports false for nil or non-element
// nodes.
func FromNode(n *html.Node) (Node, bool) {
	if n == nil || n.Type != html.ElementNode {
		return Node{}, false
	}
	return Node{n: n}, true
}

// FromSelection wraps the first element node of a goquery selection, so
// documents parsed with goquery can be handed to the query helpers.
func FromSelection(s *goquery.Selection) (Node, bool) {
	for _, n := range s.Nodes {
		if n.Type == html.ElementNode {
			return Node{n: n}, true
		}
	}
	return Node{}, false
}

// HTMLNode returns the underlying node.
func (n Node) HTMLNode() *html.Node { return n.n }

// Name returns the element's tag name.
func (n Node) Name() string { return n.n.Data }

// Attr returns the value of the named attribute, and whether it is present.
func (n Node) Attr(name string) (string, bool) {
	for _, a := range n.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// NumChildren returns the number of direct child elements.
func (n Node) NumChildren() int {
	count := 0
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			count++
		}
	}
	return count
}

// Child returns the i-th direct child element.
func (n Node) Child(i int) Node {
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if i == 0 {
			return Node{n: c}
		}
		i--
	}
	panic("htmldom: child index out of range")
}
