package linalg

import (
	"strconv"

	"github.com/walteh/gotsg/pkg/common"
	"github.com/walteh/gotsg/pkg/tsg"
)

var (
	basisLetter = tsg.MustWrap((*Basis).tsgLetter)
	basisFull   = tsg.MustWrap((*Basis).tsgFull)
)

// Basis is an ordered basis e_1 … e_n of a vector space.
type Basis struct {
	vspace    *VectorSpace
	name      string
	eltLetter string
	vectors   []*Vector
}

// NewBasis builds the basis vectors of vspace. A variadic space gets e_1,
// e_2 and e_n. The space's own basis is left untouched; see SetBasis.
func NewBasis(vspace *VectorSpace, name, eltLetter string) *Basis {
	b := &Basis{vspace: vspace, name: name, eltLetter: eltLetter}

	vec := func(sub string) *Vector {
		return NewVector(vspace, tsg.Token(eltLetter), common.Subscript(tsg.Token(sub)))
	}

	if vspace.dim.IsVariadic() {
		b.vectors = []*Vector{vec("1"), vec("2"), vec(vspace.dim.String())}
	} else {
		for i := 1; i <= vspace.dim.N(); i++ {
			b.vectors = append(b.vectors, vec(strconv.Itoa(i)))
		}
	}

	return b
}

func (b *Basis) Size() Dim {
	return b.vspace.dim
}

func (b *Basis) Vectors() []*Vector {
	return b.vectors
}

func (b *Basis) tsgLetter() (any, error) {
	return `\mathcal{` + b.name + `}`, nil
}

// Letter is labeled "Basis.Letter".
func (b *Basis) Letter() *tsg.Node {
	return basisLetter.Must(b)
}

func (b *Basis) tsgFull() (any, error) {
	var main []tsg.Element
	if b.Size().short() {
		for i, v := range b.vectors {
			if i > 0 {
				main = append(main, tsg.Token(","))
			}
			main = append(main, v.Letters())
		}
	} else {
		main = []tsg.Element{
			b.vectors[0].Letters(), tsg.Token(","),
			b.vectors[1].Letters(), tsg.Token(","),
			tsg.Token(`\cdots`), tsg.Token(","),
			b.vectors[len(b.vectors)-1].Letters(),
		}
	}

	out := []tsg.Element{b.Letter(), tsg.Token("="), tsg.Token(`\lbrace`)}
	out = append(out, main...)
	out = append(out, tsg.Token(`\rbrace`))
	return out, nil
}

// Full writes B = \lbrace e_1, …, e_n \rbrace, labeled "Basis.Full".
func (b *Basis) Full() *tsg.Node {
	return basisFull.Must(b)
}
