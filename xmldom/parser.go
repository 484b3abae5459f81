package xmldom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse decodes an XML document from r into an element tree and returns its
// root element. Namespaces are not resolved; element and attribute names are
// reduced to their local part.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not decode document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{name: t.Name.Local}
			for _, a := range t.Attr {
				el.setAttr(a.Name.Local, a.Value)
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				cur := stack[len(stack)-1]
				cur.text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}
