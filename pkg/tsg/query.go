package tsg

import (
	"math"
	"slices"
	"strings"
)

// DepthRange is a half-open window [Start, Stop) of tree depths. The group a
// query starts from is depth 0.
type DepthRange struct {
	Start int
	Stop  int
}

// AllDepths does not restrict the search.
var AllDepths = DepthRange{Start: 0, Stop: math.MaxInt}

func (d DepthRange) below(depth int) bool {
	return depth < d.Start
}

func (d DepthRange) past(depth int) bool {
	return depth >= d.Stop
}

// Search runs queries from a group restricted to a depth window.
type Search struct {
	root  *Node
	depth DepthRange
}

// Within restricts the queries of the returned Search to the depth window d.
func (n *Node) Within(d DepthRange) *Search {
	n.mustBeIndexed()
	return &Search{root: n, depth: d}
}

// FindByLabel returns the ranges of the shallowest groups matching any of labels.
func (n *Node) FindByLabel(labels ...string) []Range {
	return n.Within(AllDepths).FindByLabel(labels...)
}

// FindNodesByLabel is FindByLabel returning the groups themselves.
func (n *Node) FindNodesByLabel(labels ...string) []*Node {
	return n.Within(AllDepths).FindNodesByLabel(labels...)
}

// FindByStr returns the ascending positions of tokens equal to any of ss,
// ignoring case.
func (n *Node) FindByStr(ss ...string) []int {
	return n.Within(AllDepths).FindByStr(ss...)
}

// FindByLabel returns the ranges of the groups found by FindNodesByLabel.
func (s *Search) FindByLabel(labels ...string) []Range {
	nodes := s.FindNodesByLabel(labels...)
	out := make([]Range, len(nodes))
	for i, n := range nodes {
		out[i] = n.rng
	}
	return out
}

// FindNodesByLabel returns, in document order, the groups matching any of
// labels. A query label containing "." must equal one of the group's labels;
// any other query label only has to be a substring of one. Once a group
// matches, its descendants are not searched, so no result contains another.
func (s *Search) FindNodesByLabel(labels ...string) []*Node {
	matchers := make([]labelMatcher, len(labels))
	for i, l := range labels {
		matchers[i] = newLabelMatcher(l)
	}
	return s.findByLabel(s.root, 0, matchers, nil)
}

func (s *Search) findByLabel(n *Node, depth int, matchers []labelMatcher, out []*Node) []*Node {
	if s.depth.past(depth) {
		return out
	}

	if !s.depth.below(depth) && n.matchesAny(matchers) {
		return append(out, n)
	}

	for _, e := range n.elts {
		if child, ok := e.(*Node); ok {
			out = s.findByLabel(child, depth+1, matchers, out)
		}
	}

	return out
}

// FindByStr returns the positions of tokens equal to any of ss, ignoring case,
// that sit directly in a group whose depth is inside the window. Matches never
// stop the search from descending.
func (s *Search) FindByStr(ss ...string) []int {
	out := s.findByStr(s.root, 0, ss, nil)
	slices.Sort(out)
	return out
}

func (s *Search) findByStr(n *Node, depth int, ss []string, out []int) []int {
	if s.depth.past(depth) {
		return out
	}

	if !s.depth.below(depth) {
		for text, positions := range n.byText {
			for _, q := range ss {
				if strings.EqualFold(text, q) {
					out = append(out, positions...)
					break
				}
			}
		}
	}

	for _, e := range n.elts {
		if child, ok := e.(*Node); ok {
			out = s.findByStr(child, depth+1, ss, out)
		}
	}

	return out
}

type labelMatcher struct {
	query string
	exact bool
}

// newLabelMatcher picks exact matching for namespaced labels ("Basis.Letter")
// and substring matching otherwise. Short substrings over-match: "b" matches
// every label containing a "b".
func newLabelMatcher(query string) labelMatcher {
	return labelMatcher{query: query, exact: strings.Contains(query, ".")}
}

func (m labelMatcher) match(label string) bool {
	if m.exact {
		return label == m.query
	}
	return strings.Contains(label, m.query)
}

func (n *Node) matchesAny(matchers []labelMatcher) bool {
	for _, label := range n.labels {
		for _, m := range matchers {
			if m.match(label) {
				return true
			}
		}
	}
	return false
}
