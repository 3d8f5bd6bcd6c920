package linalg

import (
	"github.com/walteh/gotsg/pkg/common"
	"github.com/walteh/gotsg/pkg/tsg"
)

var (
	mapLetter         = tsg.MustWrap((*LinearMap).tsgLetter)
	mapFromTo         = tsg.MustWrap((*LinearMap).tsgFromTo)
	mapRepr           = tsg.MustWrap((*LinearMap).tsgRepr)
	mapReprContents   = tsg.MustWrap((*LinearMap).tsgReprContents)
	mapReprMatrixMult = tsg.MustWrap2((*LinearMap).tsgReprMatrixMult)
)

// LinearMap is a linear map between two vector spaces.
type LinearMap struct {
	letter string
	from   *VectorSpace
	to     *VectorSpace
}

// NewLinearMap defaults a nil from to V (dimension n, basis B of e) and a nil
// to to W (dimension m, basis C of f).
func NewLinearMap(letter string, from, to *VectorSpace) *LinearMap {
	if from == nil {
		from = &VectorSpace{letter: "V", dim: Variadic("n")}
		from.SetBasis(NewBasis(from, "B", "e"))
	}
	if to == nil {
		to = &VectorSpace{letter: "W", dim: Variadic("m")}
		to.SetBasis(NewBasis(to, "C", "f"))
	}
	return &LinearMap{letter: letter, from: from, to: to}
}

func (m *LinearMap) From() *VectorSpace {
	return m.from
}

func (m *LinearMap) To() *VectorSpace {
	return m.to
}

// AppliedTo is the vector α(v) in the target space. The argument is grouped
// under "LinearMap.Argument".
func (m *LinearMap) AppliedTo(v *Vector) *Vector {
	arg := tsg.Labeled([]string{tsg.Qualify(m, "Argument")}, v.Letters())
	return NewVector(m.to, m.Letter(), tsg.Token("("), arg, tsg.Token(")")).WithoutArrow()
}

func (m *LinearMap) tsgLetter() (any, error) {
	return m.letter, nil
}

// Letter is labeled "LinearMap.Letter".
func (m *LinearMap) Letter() *tsg.Node {
	return mapLetter.Must(m)
}

func (m *LinearMap) tsgFromTo() (any, error) {
	return []any{m.Letter(), ":", m.from.Letter(), `\to`, m.to.Letter()}, nil
}

// FromTo writes α : V \to W.
func (m *LinearMap) FromTo() *tsg.Node {
	return mapFromTo.Must(m)
}

func (m *LinearMap) tsgRepr() (any, error) {
	fb, err := m.from.Basis()
	if err != nil {
		return nil, err
	}
	tb, err := m.to.Basis()
	if err != nil {
		return nil, err
	}

	return []any{
		"[", m.Letter(), "]", common.Subscript(
			tsg.Labeled([]string{tsg.Qualify(m, "BasisFrom")}, fb.Letter()),
			tsg.Token(","),
			tsg.Labeled([]string{tsg.Qualify(m, "BasisTo")}, tb.Letter()),
		),
	}, nil
}

// Repr writes the matrix of the map with respect to both bases, [α]_{B,C}.
func (m *LinearMap) Repr() (*tsg.Node, error) {
	return mapRepr.Build(m)
}

func (m *LinearMap) tsgReprContents() (any, error) {
	fb, err := m.from.Basis()
	if err != nil {
		return nil, err
	}

	vectors := fb.Vectors()
	if !fb.Size().short() {
		vectors = []*Vector{vectors[0], vectors[1], nil, vectors[len(vectors)-1]}
	}

	var cols []tsg.Element
	for i, v := range vectors {
		if i > 0 {
			cols = append(cols, tsg.Token("|"))
		}
		if v == nil {
			cols = append(cols, tsg.Token(`\cdots`))
			continue
		}
		col, err := m.AppliedTo(v).Repr()
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	items := append([]tsg.Element{tsg.Token("[")}, cols...)
	items = append(items, tsg.Token("]"))

	return tsg.Intersperse(items, tsg.Element(tsg.Token(`\medspace`))), nil
}

// ReprContents writes the matrix as columns [α(e_1)]_C | … | [α(e_n)]_C.
func (m *LinearMap) ReprContents() (*tsg.Node, error) {
	return mapReprContents.Build(m)
}

func (m *LinearMap) tsgReprMatrixMult(v *Vector) (any, error) {
	lhs, err := m.AppliedTo(v).Repr()
	if err != nil {
		return nil, err
	}
	mat, err := m.Repr()
	if err != nil {
		return nil, err
	}
	rhs, err := v.Repr()
	if err != nil {
		return nil, err
	}

	return tsg.New(lhs, tsg.Token("="), mat, tsg.Token(`\cdot`), rhs), nil
}

// ReprMatrixMult writes [α(v)]_C = [α]_{B,C} \cdot [v]_B.
func (m *LinearMap) ReprMatrixMult(v *Vector) (*tsg.Node, error) {
	return mapReprMatrixMult.Build(m, v)
}
