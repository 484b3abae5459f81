package minidomext

import "fmt"

// AttributeNotFoundError is returned when an attribute is absent from an
// element.
type AttributeNotFoundError struct {
	Element   string
	Attribute string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("Failed to find attribute '%s' in element '%s'", e.Attribute, e.Element)
}

// ParseError is returned when an attribute is present but its raw text could
// not be converted into the requested type. Value holds the original text
// verbatim; Err is the underlying conversion error.
type ParseError struct {
	Element   string
	Attribute string
	Value     string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse and convert the value '%s' of attribute '%s' in element '%s'",
		e.Value, e.Attribute, e.Element)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NoChildrenFoundError is returned by a predicate-based search that matched
// no children.
type NoChildrenFoundError struct {
	Element string
}

func (e *NoChildrenFoundError) Error() string {
	return fmt.Sprintf("No children matching predicate found in Element '%s'", e.Element)
}

// MultipleChildrenFoundError is returned by a predicate-based search that
// matched more than one child. Count is the exact number of matches.
type MultipleChildrenFoundError struct {
	Element string
	Count   int
}

func (e *MultipleChildrenFoundError) Error() string {
	return fmt.Sprintf("Multiple children matching predicate found in Element '%s' (found %d elements)",
		e.Element, e.Count)
}

// NoChildrenError is returned by a name-based search that matched no
// children.
type NoChildrenError struct {
	Element string
	Child   string
}

func (e *NoChildrenError) Error() string {
	return fmt.Sprintf("No children with name '%s' in Element '%s'", e.Child, e.Element)
}

// MultipleChildrenError is returned by a name-based search that matched more
// than one child. Count is the exact number of matches.
type MultipleChildrenError struct {
	Element string
	Child   string
	Count   int
}

func (e *MultipleChildrenError) Error() string {
	return fmt.Sprintf("Multiple children with name '%s' in Element '%s' (found %d elements)",
		e.Child, e.Element, e.Count)
}
