package tsg

import (
	"fmt"
	"slices"

	"gitlab.com/tozd/go/errors"
)

// Range is a half-open interval [Start, Stop) of flattened token positions.
type Range struct {
	Start int
	Stop  int
}

// Len is the number of tokens in the range.
func (r Range) Len() int {
	return r.Stop - r.Start
}

// Contains reports whether pos falls inside the range.
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos < r.Stop
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.Stop)
}

// reindex runs the index pass with n as the root of its tree.
func (n *Node) reindex() {
	n.assign(0)
}

// assign walks the subtree left to right starting at global position start.
// Tokens take one position each and are recorded in the token index; child
// groups are assigned at the cursor and registered under each of their labels.
func (n *Node) assign(start int) int {
	n.byLabel = make(map[string][]*Node)
	n.byText = make(map[string][]int)

	cursor := start
	for _, e := range n.elts {
		switch e := e.(type) {
		case Token:
			n.byText[string(e)] = append(n.byText[string(e)], cursor)
			cursor++
		case *Node:
			cursor = e.assign(cursor)
			for _, label := range e.labels {
				n.byLabel[label] = append(n.byLabel[label], e)
			}
		}
	}

	n.rng = Range{Start: start, Stop: cursor}
	n.indexed = true

	return cursor
}

func (n *Node) mustBeIndexed() {
	if n == nil {
		panic(errors.Errorf("nil group: %w", ErrUnindexed))
	}
	if !n.indexed {
		panic(errors.Errorf("%s: %w", n, ErrUnindexed))
	}
}

// Range is the global range covered by this group within its current tree.
// It panics with ErrUnindexed on a group that was not built by this package.
func (n *Node) Range() Range {
	n.mustBeIndexed()
	return n.rng
}

// ChildrenByLabel returns the direct child groups carrying label verbatim.
func (n *Node) ChildrenByLabel(label string) []*Node {
	n.mustBeIndexed()
	return slices.Clone(n.byLabel[label])
}

// TokenPositions returns the global positions of the direct child tokens
// equal to text. Tokens of nested groups are not included.
func (n *Node) TokenPositions(text string) []int {
	n.mustBeIndexed()
	return slices.Clone(n.byText[text])
}
