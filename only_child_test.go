package minidomext_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	minidomext "github.com/hove-io/minidom-ext"
	"github.com/hove-io/minidom-ext/xmldom"
)

func TestTryFindOnlyChild_OneMatch(t *testing.T) {
	root := mustParse(t, `<root>
			<child type="ugly" />
			<child />
		</root>`)

	child, err := minidomext.TryFindOnlyChild(root, func(e *xmldom.Element) bool {
		typ, _ := e.Attr("type")
		return e.Name() == "child" && typ == "ugly"
	})
	require.NoError(t, err)
	assert.Equal(t, "child", child.Name())
	assert.Same(t, root.Child(0), child)
}

func TestTryFindOnlyChild_NoChildren(t *testing.T) {
	root := mustParse(t, `<root />`)

	_, err := minidomext.TryFindOnlyChild(root, func(e *xmldom.Element) bool {
		return e.Name() == "child"
	})
	require.Error(t, err)
	assert.Equal(t, "No children matching predicate found in Element 'root'", err.Error())

	var noChildren *minidomext.NoChildrenFoundError
	require.ErrorAs(t, err, &noChildren)
	assert.Equal(t, "root", noChildren.Element)
}

func TestTryFindOnlyChild_NoMatch(t *testing.T) {
	// Children present but none matching behaves exactly like no children.
	root := mustParse(t, `<root><item /><item /></root>`)

	_, err := minidomext.TryFindOnlyChild(root, func(e *xmldom.Element) bool {
		return e.Name() == "child"
	})
	var noChildren *minidomext.NoChildrenFoundError
	require.ErrorAs(t, err, &noChildren)
	assert.Equal(t, "root", noChildren.Element)
}

func TestTryFindOnlyChild_MultipleMatches(t *testing.T) {
	root := mustParse(t, `<root>
			<child />
			<child />
		</root>`)

	_, err := minidomext.TryFindOnlyChild(root, func(e *xmldom.Element) bool {
		return e.Name() == "child"
	})
	require.Error(t, err)
	assert.Equal(t,
		"Multiple children matching predicate found in Element 'root' (found 2 elements)",
		err.Error())

	var multiple *minidomext.MultipleChildrenFoundError
	require.ErrorAs(t, err, &multiple)
	assert.Equal(t, 2, multiple.Count)
}

func TestTryFindOnlyChild_CountIsExact(t *testing.T) {
	root := mustParse(t, `<root>
			<child />
			<item />
			<child />
			<child />
			<child />
		</root>`)

	_, err := minidomext.TryFindOnlyChild(root, func(e *xmldom.Element) bool {
		return e.Name() == "child"
	})
	var multiple *minidomext.MultipleChildrenFoundError
	require.ErrorAs(t, err, &multiple)
	assert.Equal(t, 4, multiple.Count)

	// A predicate matching every child reports the full child count.
	_, err = minidomext.TryFindOnlyChild(root, func(*xmldom.Element) bool { return true })
	require.ErrorAs(t, err, &multiple)
	assert.Equal(t, 5, multiple.Count)
}

func TestFindOnlyChild(t *testing.T) {
	root := mustParse(t, `<root><child id="1" /><item /></root>`)

	child, ok := minidomext.FindOnlyChild(root, func(e *xmldom.Element) bool {
		return e.Name() == "child"
	})
	require.True(t, ok)
	assert.Equal(t, "child", child.Name())

	_, ok = minidomext.FindOnlyChild(root, func(*xmldom.Element) bool { return false })
	assert.False(t, ok)
	_, ok = minidomext.FindOnlyChild(root, func(*xmldom.Element) bool { return true })
	assert.False(t, ok)
}

func TestTryOnlyChild(t *testing.T) {
	root := mustParse(t, `<root><child id="1" /></root>`)

	child, err := minidomext.TryOnlyChild(root, "child")
	require.NoError(t, err)
	assert.Same(t, root.Child(0), child)
}

func TestTryOnlyChild_ErrorRemapping(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		child   string
		message string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "no children",
			doc:     `<root />`,
			child:   "child",
			message: "No children with name 'child' in Element 'root'",
			check: func(t *testing.T, err error) {
				var e *minidomext.NoChildrenError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, "root", e.Element)
				assert.Equal(t, "child", e.Child)
			},
		},
		{
			name:    "multiple children",
			doc:     `<root><child /><child /></root>`,
			child:   "child",
			message: "Multiple children with name 'child' in Element 'root' (found 2 elements)",
			check: func(t *testing.T, err error) {
				var e *minidomext.MultipleChildrenError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, "child", e.Child)
				assert.Equal(t, 2, e.Count)
			},
		},
		{
			name:    "exact count survives remapping",
			doc:     `<root><child /><child /><child /></root>`,
			child:   "child",
			message: "Multiple children with name 'child' in Element 'root' (found 3 elements)",
			check: func(t *testing.T, err error) {
				var e *minidomext.MultipleChildrenError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, 3, e.Count)
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			root := mustParse(t, c.doc)
			_, err := minidomext.TryOnlyChild(root, c.child)
			require.Error(t, err)
			assert.Equal(t, c.message, err.Error())
			c.check(t, err)

			// The predicate-flavored variants never escape TryOnlyChild.
			var found *minidomext.NoChildrenFoundError
			assert.False(t, errors.As(err, &found))
		})
	}
}

func TestOnlyChild(t *testing.T) {
	root := mustParse(t, `<root><child id="1" /><item /></root>`)

	child, ok := minidomext.OnlyChild(root, "child")
	require.True(t, ok)
	assert.Equal(t, "child", child.Name())

	_, ok = minidomext.OnlyChild(root, "missing")
	assert.False(t, ok)
}
