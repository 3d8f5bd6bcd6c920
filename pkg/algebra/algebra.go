// Package algebra builds notation for sets and maps between them.
package algebra

import (
	"github.com/walteh/gotsg/pkg/tsg"
)

var (
	setLetter = tsg.MustWrap((*Set).tsgLetter)
	mapLetter = tsg.MustWrap((*Map).tsgLetter)
	mapFromTo = tsg.MustWrap((*Map).tsgFromTo)
)

// Set is a set named by a single letter.
type Set struct {
	letter string
}

func NewSet(letter string) *Set {
	return &Set{letter: letter}
}

func (s *Set) tsgLetter() (any, error) {
	return s.letter, nil
}

// Letter is labeled "Set.Letter".
func (s *Set) Letter() *tsg.Node {
	return setLetter.Must(s)
}

// Map is a function between two sets.
type Map struct {
	letter string
	from   *Set
	to     *Set
}

func NewMap(letter string, from, to *Set) *Map {
	return &Map{letter: letter, from: from, to: to}
}

func (m *Map) tsgLetter() (any, error) {
	return m.letter, nil
}

// Letter is labeled "Map.Letter".
func (m *Map) Letter() *tsg.Node {
	return mapLetter.Must(m)
}

func (m *Map) tsgFromTo() (any, error) {
	return []any{m.Letter(), ":", m.from.Letter(), `\to`, m.to.Letter()}, nil
}

// FromTo renders "f : A \to B", labeled "Map.FromTo".
func (m *Map) FromTo() *tsg.Node {
	return mapFromTo.Must(m)
}
