package minidomext

// TryFindOnlyChild scans el's direct children in document order and returns
// the single child for which pred holds. Zero matches yield a
// *NoChildrenFoundError; two or more yield a *MultipleChildrenFoundError
// whose Count is the exact number of matches, not a lower bound.
func TryFindOnlyChild[E Element[E]](el E, pred func(E) bool) (E, error) {
	var match E
	count := 0

	for i, n := 0, el.NumChildren(); i < n; i++ {
		child := el.Child(i)
		if !pred(child) {
			continue
		}
		if count == 0 {
			match = child
		}
		count++
	}

	switch count {
	case 0:
		var zero E
		return zero, &NoChildrenFoundError{Element: el.Name()}
	case 1:
		return match, nil
	default:
		var zero E
		return zero, &MultipleChildrenFoundError{Element: el.Name(), Count: count}
	}
}

// FindOnlyChild is TryFindOnlyChild with the error discarded.
func FindOnlyChild[E Element[E]](el E, pred func(E) bool) (E, bool) {
	child, err := TryFindOnlyChild(el, pred)
	return child, err == nil
}

// TryOnlyChild returns the single direct child of el named childName. It
// delegates to TryFindOnlyChild with a name-equality predicate and remaps
// the predicate-flavored errors to their name-carrying counterparts:
// *NoChildrenFoundError becomes *NoChildrenError and
// *MultipleChildrenFoundError becomes *MultipleChildrenError, with the same
// count. Any other error passes through unchanged.
func TryOnlyChild[E Element[E]](el E, childName string) (E, error) {
	child, err := TryFindOnlyChild(el, func(e E) bool { return e.Name() == childName })
	if err == nil {
		return child, nil
	}

	var zero E
	switch e := err.(type) {
	case *NoChildrenFoundError:
		return zero, &NoChildrenError{Element: e.Element, Child: childName}
	case *MultipleChildrenFoundError:
		return zero, &MultipleChildrenError{Element: e.Element, Child: childName, Count: e.Count}
	default:
		return zero, err
	}
}

// OnlyChild is TryOnlyChild with the error discarded.
func OnlyChild[E Element[E]](el E, childName string) (E, bool) {
	child, err := TryOnlyChild(el, childName)
	return child, err == nil
}
