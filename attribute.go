package minidomext

import (
	"strconv"
	"time"
)

// Value is the set of types the built-in textual-parse contract covers.
// Types outside this set can be extracted with TryAttributeFunc and an
// explicit parse function.
type Value interface {
	string |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		bool | time.Duration
}

// TryAttributeFunc looks up the named attribute on el and converts its raw
// text with parse. It returns an *AttributeNotFoundError if the attribute is
// absent, and a *ParseError wrapping the conversion failure if parse rejects
// the text.
func TryAttributeFunc[T any, E Element[E]](el E, name string, parse func(string) (T, error)) (T, error) {
	var zero T

	raw, ok := el.Attr(name)
	if !ok {
		return zero, &AttributeNotFoundError{Element: el.Name(), Attribute: name}
	}

	v, err := parse(raw)
	if err != nil {
		return zero, &ParseError{
			Element:   el.Name(),
			Attribute: name,
			Value:     raw,
			Err:       err,
		}
	}
	return v, nil
}

// TryAttribute looks up the named attribute on el and converts its raw text
// into T using the built-in parse rules: strconv for numbers and booleans,
// time.ParseDuration for durations, and the text itself for strings.
//
//	id, err := minidomext.TryAttribute[uint64](root, "id")
func TryAttribute[T Value, E Element[E]](el E, name string) (T, error) {
	return TryAttributeFunc(el, name, parseValue[T])
}

// AttributeFunc is TryAttributeFunc with the error discarded; absence and
// conversion failure are indistinguishable to the caller.
func AttributeFunc[T any, E Element[E]](el E, name string, parse func(string) (T, error)) (T, bool) {
	v, err := TryAttributeFunc(el, name, parse)
	return v, err == nil
}

// Attribute is TryAttribute with the error discarded.
func Attribute[T Value, E Element[E]](el E, name string) (T, bool) {
	v, err := TryAttribute[T](el, name)
	return v, err == nil
}

func parseValue[T Value](raw string) (T, error) {
	var out T
	var err error

	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *int:
		var v int64
		v, err = strconv.ParseInt(raw, 10, 0)
		*p = int(v)
	case *int8:
		var v int64
		v, err = strconv.ParseInt(raw, 10, 8)
		*p = int8(v)
	case *int16:
		var v int64
		v, err = strconv.ParseInt(raw, 10, 16)
		*p = int16(v)
	case *int32:
		var v int64
		v, err = strconv.ParseInt(raw, 10, 32)
		*p = int32(v)
	case *int64:
		*p, err = strconv.ParseInt(raw, 10, 64)
	case *uint:
		var v uint64
		v, err = strconv.ParseUint(raw, 10, 0)
		*p = uint(v)
	case *uint8:
		var v uint64
		v, err = strconv.ParseUint(raw, 10, 8)
		*p = uint8(v)
	case *uint16:
		var v uint64
		v, err = strconv.ParseUint(raw, 10, 16)
		*p = uint16(v)
	case *uint32:
		var v uint64
		v, err = strconv.ParseUint(raw, 10, 32)
		*p = uint32(v)
	case *uint64:
		*p, err = strconv.ParseUint(raw, 10, 64)
	case *float32:
		var v float64
		v, err = strconv.ParseFloat(raw, 32)
		*p = float32(v)
	case *float64:
		*p, err = strconv.ParseFloat(raw, 64)
	case *bool:
		*p, err = strconv.ParseBool(raw)
	case *time.Duration:
		*p, err = time.ParseDuration(raw)
	}

	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
