// Package linalg builds notation for vector spaces, bases, vectors and
// linear maps.
package linalg

import (
	"strconv"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gotsg/pkg/common"
	"github.com/walteh/gotsg/pkg/tsg"
)

var (
	ErrBasisNotSet = errors.Base("basis not set")
	ErrDimension   = errors.Base("fixed dimension must be at least 1")
)

// Dim is either a fixed count or a symbolic one such as "n".
type Dim struct {
	n      int
	symbol string
}

// Fixed is a concrete dimension.
func Fixed(n int) Dim {
	return Dim{n: n}
}

// Variadic is a dimension written as a symbol.
func Variadic(symbol string) Dim {
	return Dim{symbol: symbol}
}

func (d Dim) IsVariadic() bool {
	return d.symbol != ""
}

// N is the fixed count; zero for variadic dimensions.
func (d Dim) N() int {
	return d.n
}

func (d Dim) String() string {
	if d.IsVariadic() {
		return d.symbol
	}
	return strconv.Itoa(d.n)
}

// short reports whether every element can be written out.
func (d Dim) short() bool {
	return !d.IsVariadic() && d.n <= 3
}

var (
	spaceLetter   = tsg.MustWrap((*VectorSpace).tsgLetter)
	vectorLetters = tsg.MustWrap((*Vector).tsgLetters)
	vectorRepr    = tsg.MustWrap((*Vector).tsgRepr)
)

// VectorSpace is a named space. Its basis is assigned after construction
// because a Basis needs the space to exist first.
type VectorSpace struct {
	letter string
	dim    Dim
	basis  *Basis
}

func NewVectorSpace(letter string, dim Dim) (*VectorSpace, error) {
	if !dim.IsVariadic() && dim.n < 1 {
		return nil, errors.Errorf("vector space %s of dimension %d: %w", letter, dim.n, ErrDimension)
	}
	return &VectorSpace{letter: letter, dim: dim}, nil
}

func (v *VectorSpace) Dim() Dim {
	return v.dim
}

// Basis returns ErrBasisNotSet until SetBasis has been called.
func (v *VectorSpace) Basis() (*Basis, error) {
	if v.basis == nil {
		return nil, errors.Errorf("vector space %s: %w", v.letter, ErrBasisNotSet)
	}
	return v.basis, nil
}

func (v *VectorSpace) SetBasis(b *Basis) {
	v.basis = b
}

func (v *VectorSpace) tsgLetter() (any, error) {
	return v.letter, nil
}

// Letter is labeled "VectorSpace.Letter".
func (v *VectorSpace) Letter() *tsg.Node {
	return spaceLetter.Must(v)
}

// Vector is written with one or more letters, under an arrow by default.
type Vector struct {
	letters []tsg.Element
	vspace  *VectorSpace
	arrow   bool
}

func NewVector(vspace *VectorSpace, letters ...tsg.Element) *Vector {
	return &Vector{letters: letters, vspace: vspace, arrow: true}
}

// WithoutArrow returns a copy of v written without the \vec{} arrow.
func (v *Vector) WithoutArrow() *Vector {
	c := *v
	c.arrow = false
	return &c
}

func (v *Vector) Space() *VectorSpace {
	return v.vspace
}

func (v *Vector) tsgLetters() (any, error) {
	if !v.arrow {
		return v.letters, nil
	}

	out := make([]tsg.Element, 0, len(v.letters)+2)
	out = append(out, tsg.Labeled([]string{tsg.Qualify(v, "Arrow")}, tsg.Token(`\vec{`)))
	out = append(out, v.letters...)
	out = append(out, tsg.Token("}"))
	return out, nil
}

// Letters is labeled "Vector.Letters"; the arrow opener is "Vector.Arrow".
func (v *Vector) Letters() *tsg.Node {
	return vectorLetters.Must(v)
}

func (v *Vector) tsgRepr() (any, error) {
	b, err := v.vspace.Basis()
	if err != nil {
		return nil, err
	}
	return []any{"[", v.Letters(), "]", common.Subscript(b.Letter())}, nil
}

// Repr is the coordinate vector [v]_{B}, labeled "Vector.Repr".
func (v *Vector) Repr() (*tsg.Node, error) {
	return vectorRepr.Build(v)
}
