package tsg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/gotsg/pkg/tsg"
)

// scenarioA is ["x", N1{Foo.bar: "y", "z"}].
func scenarioA() (root, n1 *tsg.Node) {
	n1 = tsg.Labeled([]string{"Foo.bar"}, tsg.Token("y"), tsg.Token("z"))
	root = tsg.New(tsg.Token("x"), n1)
	return root, n1
}

func TestScenarioA(t *testing.T) {
	root, n1 := scenarioA()

	assert.Equal(t, []string{"x", "y", "z"}, root.Flatten())
	assert.Equal(t, tsg.Range{Start: 0, Stop: 3}, root.Range())
	assert.Equal(t, tsg.Range{Start: 1, Stop: 3}, n1.Range())

	assert.Equal(t, []*tsg.Node{n1}, root.FindNodesByLabel("Foo.bar"))
	assert.Equal(t, []tsg.Range{{Start: 1, Stop: 3}}, root.FindByLabel("Foo.bar"))
	assert.Equal(t, []*tsg.Node{n1}, root.FindNodesByLabel("bar"))
	assert.Equal(t, []int{1}, root.FindByStr("Y"))
}

func TestIndexCaches(t *testing.T) {
	a := tsg.Labeled([]string{"A"}, tsg.Token("a"))
	b := tsg.Labeled([]string{"A", "B"}, tsg.Token("b"), tsg.Token("b"))
	root := tsg.New(tsg.Token("("), a, tsg.Token(","), b, tsg.Token(")"), tsg.Token(","))

	assert.Equal(t, []*tsg.Node{a, b}, root.ChildrenByLabel("A"))
	assert.Equal(t, []*tsg.Node{b}, root.ChildrenByLabel("B"))
	assert.Empty(t, root.ChildrenByLabel("missing"))

	assert.Equal(t, []int{2, 6}, root.TokenPositions(","))
	assert.Empty(t, root.TokenPositions("b"), "token index only covers direct tokens")
	assert.Equal(t, []int{3, 4}, b.TokenPositions("b"))
}

func TestStandaloneGroupIsRooted(t *testing.T) {
	n := tsg.New(tsg.Token("a"), tsg.Token("b"))
	assert.Equal(t, tsg.Range{Start: 0, Stop: 2}, n.Range())

	tsg.New(tsg.Token("x"), tsg.Token("y"), n)
	assert.Equal(t, tsg.Range{Start: 2, Stop: 4}, n.Range(), "adopting parent reindexes the child")
}

func TestEmptyGroup(t *testing.T) {
	empty := tsg.New()
	root := tsg.New(tsg.Token("a"), empty, tsg.Token("b"))

	assert.Equal(t, tsg.Range{Start: 1, Stop: 1}, empty.Range())
	assert.Equal(t, 0, empty.Range().Len())
	assert.Equal(t, []string{"a", "b"}, root.Flatten())
}

func TestRangesCoverTokensOnNestedTree(t *testing.T) {
	leaf := func(label string, toks ...string) *tsg.Node {
		return tsg.Labeled([]string{label}, tsg.Tokens(toks...)...)
	}

	root := tsg.Labeled([]string{"root"},
		tsg.Token("a"),
		tsg.New(leaf("one", "b", "c"), tsg.Token("d"), leaf("two")),
		leaf("three", "e"),
		tsg.New(tsg.New(tsg.New(leaf("deep", "f", "g", "h")))),
		tsg.Token("i"),
	)

	require.Equal(t, 0, root.Range().Start)
	require.Len(t, root.Flatten(), root.Range().Len())
	checkRanges(t, root)
}

// checkRanges verifies that every group spans exactly its tokens and that
// children tile their parent in order.
func checkRanges(t *testing.T, n *tsg.Node) int {
	t.Helper()

	cursor := n.Range().Start
	tokens := 0
	for _, e := range n.Elements() {
		switch e := e.(type) {
		case tsg.Token:
			cursor++
			tokens++
		case *tsg.Node:
			require.Equal(t, cursor, e.Range().Start, "child %s must start where its predecessor ended", e)
			tokens += checkRanges(t, e)
			cursor = e.Range().Stop
		}
	}

	require.Equal(t, cursor, n.Range().Stop)
	require.Equal(t, tokens, n.Range().Len())
	require.Len(t, n.Flatten(), tokens)

	return tokens
}

func TestComposingOwnedGroupAdoptsCopy(t *testing.T) {
	shared := tsg.Labeled([]string{"shared"}, tsg.Token("s"))

	first := tsg.New(tsg.Token("a"), shared)
	second := tsg.New(tsg.Token("b"), tsg.Token("c"), shared)

	assert.Equal(t, tsg.Range{Start: 1, Stop: 2}, shared.Range(), "first tree keeps its caches")
	assert.Equal(t, []*tsg.Node{shared}, first.FindNodesByLabel("shared"))

	got := second.FindNodesByLabel("shared")
	require.Len(t, got, 1)
	assert.NotSame(t, shared, got[0])
	assert.NotEqual(t, shared.ID(), got[0].ID())
	assert.Equal(t, tsg.Range{Start: 2, Stop: 3}, got[0].Range())
}

func TestSameGroupTwiceInOneParent(t *testing.T) {
	g := tsg.Labeled([]string{"g"}, tsg.Token("g"))
	root := tsg.New(g, tsg.Token("+"), g)

	assert.Equal(t, []string{"g", "+", "g"}, root.Flatten())
	assert.Equal(t, []tsg.Range{{Start: 0, Stop: 1}, {Start: 2, Stop: 3}}, root.FindByLabel("g"))
}

func TestCopyIsIndependent(t *testing.T) {
	root, n1 := scenarioA()

	cp := root.Copy()
	assert.NotEqual(t, root.ID(), cp.ID())
	assert.Equal(t, root.Flatten(), cp.Flatten())

	cpN1 := cp.FindNodesByLabel("Foo.bar")
	require.Len(t, cpN1, 1)
	assert.NotSame(t, n1, cpN1[0])

	// reindex the copy's child inside a bigger tree
	tsg.New(tsg.Token("p"), tsg.Token("t"), cp)

	assert.Equal(t, tsg.Range{Start: 2, Stop: 5}, cp.Range())
	assert.Equal(t, tsg.Range{Start: 3, Stop: 5}, cpN1[0].Range())
	assert.Equal(t, tsg.Range{Start: 0, Stop: 3}, root.Range())
	assert.Equal(t, tsg.Range{Start: 1, Stop: 3}, n1.Range())
	assert.Equal(t, []int{0}, root.TokenPositions("x"))
}

func TestCopyOfNestedGroupIsRooted(t *testing.T) {
	_, n1 := scenarioA()

	cp := n1.Copy()
	assert.Equal(t, tsg.Range{Start: 0, Stop: 2}, cp.Range())
	assert.Equal(t, []string{"Foo.bar"}, cp.Labels())
	assert.Equal(t, tsg.Range{Start: 1, Stop: 3}, n1.Range())
}

func TestUnindexedAccessPanics(t *testing.T) {
	var n tsg.Node

	assert.PanicsWithError(t, "Group[]: group has not been indexed", func() { n.Range() })
	assert.Panics(t, func() { n.ChildrenByLabel("x") })
	assert.Panics(t, func() { n.TokenPositions("x") })
	assert.Panics(t, func() { n.FindByLabel("x") })
	assert.Panics(t, func() { n.FindByStr("x") })
}

func TestNilElementPanics(t *testing.T) {
	tests := []struct {
		name string
		elts []tsg.Element
	}{
		{name: "nil_group", elts: []tsg.Element{tsg.Token("a"), (*tsg.Node)(nil), tsg.Token("b")}},
		{name: "nil_element", elts: []tsg.Element{tsg.Token("a"), nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got any
			func() {
				defer func() { got = recover() }()
				tsg.New(tt.elts...)
			}()

			err, ok := got.(error)
			require.True(t, ok, "expected a panic with an error, got %v", got)
			require.ErrorIs(t, err, tsg.ErrInvalidShape)
		})
	}
}

func TestLabelsAreCopied(t *testing.T) {
	labels := []string{"a"}
	n := tsg.Labeled(labels)
	labels[0] = "mutated"

	assert.Equal(t, []string{"a"}, n.Labels())
	assert.True(t, n.HasLabel("a"))
	assert.False(t, n.HasLabel("mutated"))
}

func TestGroup(t *testing.T) {
	n, err := tsg.Group([]string{"L"}, []any{"a", tsg.Token("b"), tsg.New(tsg.Token("c"))})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, n.Flatten())
	assert.Equal(t, []string{"L"}, n.Labels())

	_, err = tsg.Group(nil, 42)
	require.ErrorIs(t, err, tsg.ErrInvalidShape)
}

func TestRange(t *testing.T) {
	r := tsg.Range{Start: 2, Stop: 5}
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))
	assert.Equal(t, "[2,5)", r.String())
}
