// Package minidomext provides small query helpers over in-memory markup
// trees: typed extraction of attribute values, and selection of the one and
// only child matching a predicate or a tag name.
//
// The helpers work on any node type implementing the Element interface. The
// xmldom and htmldom subpackages provide ready-made trees for XML and HTML
// documents; callers with their own tree only need to expose the four
// Element methods.
package minidomext

// Element is the minimal read-only surface a tree node must expose to be
// queried. The type parameter is the node type itself, so query functions
// return the caller's concrete type rather than a wrapper.
//
// Children are addressed by index to keep scans a single linear pass;
// implementations must report direct children only, in document order.
type Element[E any] interface {
	// Name returns the node's tag name.
	Name() string

	// Attr returns the raw text value of the named attribute, and whether
	// the attribute is present.
	Attr(name string) (string, bool)

	// NumChildren returns the number of direct child elements.
	NumChildren() int

	// Child returns the i-th direct child element, 0 <= i < NumChildren().
	Child(i int) E
}
