package linalg

import (
	"github.com/walteh/gotsg/pkg/common"
	"github.com/walteh/gotsg/pkg/tsg"
)

const (
	IndexLabel   = "index"
	IndicesLabel = "indices"
)

var (
	eqLetter          = tsg.MustWrap((*EquationLetter).tsgLetter)
	eqFull            = tsg.MustWrap((*EquationLetter).tsgFull)
	eqVariadicFull    = tsg.MustWrap((*EquationLetter).tsgVariadicFull)
	eqVariadicConcise = tsg.MustWrap((*EquationLetter).tsgVariadicConcise)
	eqIndexedFull     = tsg.MustWrap((*EquationLetter).tsgIndexedFull)
)

// EquationLetter is a letter carrying a number of subscript indices, such
// as A_{ij} for a matrix entry.
type EquationLetter struct {
	letter  string
	indices Dim
	start   rune
}

type EquationLetterOption func(*equationLetterConfig)

type equationLetterConfig struct {
	start   rune
	textify bool
}

// WithSubscriptStart sets the first index letter (default 'i').
func WithSubscriptStart(r rune) EquationLetterOption {
	return func(c *equationLetterConfig) {
		c.start = r
	}
}

// WithoutTextify keeps the letter as math rather than wrapping it in \text{}.
func WithoutTextify() EquationLetterOption {
	return func(c *equationLetterConfig) {
		c.textify = false
	}
}

func NewEquationLetter(letter string, indices Dim, opts ...EquationLetterOption) *EquationLetter {
	cfg := equationLetterConfig{start: 'i', textify: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.textify {
		letter = `\text{` + letter + `}`
	}

	return &EquationLetter{letter: letter, indices: indices, start: cfg.start}
}

// NewEquationLetterVector is an EquationLetter with one index.
func NewEquationLetterVector(letter string, opts ...EquationLetterOption) *EquationLetter {
	return NewEquationLetter(letter, Fixed(1), opts...)
}

// NewEquationLetterMatrix is an EquationLetter with two indices.
func NewEquationLetterMatrix(letter string, opts ...EquationLetterOption) *EquationLetter {
	return NewEquationLetter(letter, Fixed(2), opts...)
}

func (e *EquationLetter) Indices() Dim {
	return e.indices
}

func (e *EquationLetter) tsgLetter() (any, error) {
	return e.letter, nil
}

func (e *EquationLetter) Letter() *tsg.Node {
	return eqLetter.Must(e)
}

func (e *EquationLetter) tsgFull() (any, error) {
	if e.indices.IsVariadic() {
		return e.VariadicFull(), nil
	}
	return e.IndexedFull(), nil
}

// Full writes every index for a fixed count, or the concise form otherwise.
func (e *EquationLetter) Full() *tsg.Node {
	return eqFull.Must(e)
}

func (e *EquationLetter) tsgVariadicFull() (any, error) {
	return e.VariadicConcise(), nil
}

func (e *EquationLetter) VariadicFull() *tsg.Node {
	return eqVariadicFull.Must(e)
}

func (e *EquationLetter) tsgVariadicConcise() (any, error) {
	last := e.indices.String()
	if !e.indices.IsVariadic() {
		last = "n"
	}

	idx := func(sub string) *tsg.Node {
		return tsg.Labeled([]string{IndexLabel}, tsg.Token(string(e.start)), common.Subscript(tsg.Token(sub)))
	}

	indices := tsg.Labeled([]string{IndicesLabel}, idx("1"), idx("2"), tsg.Token(`\cdots`), idx(last))

	return []any{e.letter, common.Subscript(indices)}, nil
}

// VariadicConcise writes x_{i_1 i_2 \cdots i_n}.
func (e *EquationLetter) VariadicConcise() *tsg.Node {
	return eqVariadicConcise.Must(e)
}

func (e *EquationLetter) tsgIndexedFull() (any, error) {
	elts := make([]tsg.Element, e.indices.N())
	for i := range elts {
		elts[i] = tsg.Labeled([]string{IndexLabel}, tsg.Token(string(e.start+rune(i))))
	}

	return []any{e.letter, common.Subscript(tsg.Labeled([]string{IndicesLabel}, elts...))}, nil
}

// IndexedFull writes one index letter per index, e.g. A_{ij}.
func (e *EquationLetter) IndexedFull() *tsg.Node {
	return eqIndexedFull.Must(e)
}
