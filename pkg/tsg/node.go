package tsg

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"gitlab.com/tozd/go/errors"
)

// Element is either a Token or a *Node.
type Element interface {
	element()
}

// Token is an atomic string leaf. Each token is one rendered unit.
type Token string

func (Token) element() {}

func (t Token) String() string {
	return string(t)
}

// Tokens converts plain strings into elements.
func Tokens(ss ...string) []Element {
	out := make([]Element, len(ss))
	for i, s := range ss {
		out[i] = Token(s)
	}
	return out
}

// Node is a labeled, ordered group of tokens and nested groups.
//
// The range and both lookup maps are caches owned by the index pass. They are
// rebuilt whenever the tree containing the node is (re)built and describe
// positions in that whole tree, not in the node alone.
type Node struct {
	id     uuid.UUID
	elts   []Element
	labels []string

	// adopted is set once a parent has taken ownership of this node
	adopted bool

	indexed bool
	rng     Range
	byLabel map[string][]*Node
	byText  map[string][]int
}

func (*Node) element() {}

// New builds an unlabeled group. See Labeled.
func New(elts ...Element) *Node {
	return Labeled(nil, elts...)
}

// Labeled builds a group carrying labels and indexes it as a root.
//
// Child groups are adopted. A child that already belongs to another group is
// deep copied first so that no group is shared between trees. A nil element
// panics with ErrInvalidShape.
func Labeled(labels []string, elts ...Element) *Node {
	n := &Node{
		id:     uuid.New(),
		labels: slices.Clone(labels),
		elts:   make([]Element, 0, len(elts)),
	}

	for i, e := range elts {
		switch e := e.(type) {
		case Token:
			n.elts = append(n.elts, e)
		case *Node:
			if e == nil {
				panic(errors.Errorf("element %d is a nil group: %w", i, ErrInvalidShape))
			}
			if e.adopted {
				e = e.clone()
			}
			e.adopted = true
			n.elts = append(n.elts, e)
		default:
			panic(errors.Errorf("element %d is nil: %w", i, ErrInvalidShape))
		}
	}

	n.reindex()

	return n
}

// Group normalises builder content with Elems and wraps it in a labeled group.
func Group(labels []string, content any) (*Node, error) {
	elts, err := Elems(content)
	if err != nil {
		return nil, err
	}
	return Labeled(labels, elts...), nil
}

// ID is unique per constructed or copied group.
func (n *Node) ID() uuid.UUID {
	return n.id
}

// Labels returns a copy of the labels attached to this group.
func (n *Node) Labels() []string {
	return slices.Clone(n.labels)
}

// HasLabel reports whether label is attached to this group verbatim.
func (n *Node) HasLabel(label string) bool {
	return slices.Contains(n.labels, label)
}

// Elements returns a copy of the direct children.
func (n *Node) Elements() []Element {
	return slices.Clone(n.elts)
}

// Flatten returns every token of the subtree, depth first, children in order.
// This is the exact sequence to hand to the renderer.
func (n *Node) Flatten() []string {
	out := make([]string, 0, n.countTokens())
	return n.appendTokens(out)
}

func (n *Node) appendTokens(out []string) []string {
	for _, e := range n.elts {
		switch e := e.(type) {
		case Token:
			out = append(out, string(e))
		case *Node:
			out = e.appendTokens(out)
		}
	}
	return out
}

func (n *Node) countTokens() int {
	if n.indexed {
		return n.rng.Len()
	}
	c := 0
	for _, e := range n.elts {
		switch e := e.(type) {
		case Token:
			c++
		case *Node:
			c += e.countTokens()
		}
	}
	return c
}

// Copy returns an independent deep copy indexed as its own root, so the
// copy's range starts at 0 even when n is nested in a larger tree.
func (n *Node) Copy() *Node {
	c := n.clone()
	c.reindex()
	return c
}

// clone copies the structure only; callers index the result.
func (n *Node) clone() *Node {
	c := &Node{
		id:     uuid.New(),
		labels: slices.Clone(n.labels),
		elts:   make([]Element, len(n.elts)),
	}
	for i, e := range n.elts {
		switch e := e.(type) {
		case Token:
			c.elts[i] = e
		case *Node:
			cc := e.clone()
			cc.adopted = true
			c.elts[i] = cc
		}
	}
	return c
}

// String renders the group header used by Dump, e.g. Group[Foo.bar].
func (n *Node) String() string {
	return fmt.Sprintf("Group[%s]", strings.Join(n.labels, ","))
}
