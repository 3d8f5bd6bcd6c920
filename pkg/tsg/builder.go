package tsg

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gotsg/pkg/funcname"
)

// BuilderPrefix marks a method as a group builder. The prefix is matched
// case-insensitively so unexported (tsgLetter) and exported (TsgLetter)
// builders both qualify. The rest of the name must start with an upper case
// letter.
const BuilderPrefix = "tsg"

// Builder turns a content method of R into one returning a labeled group.
//
//	var setLetter = tsg.MustWrap((*Set).tsgLetter) // label "Set.Letter"
//
//	func (s *Set) Letter() *tsg.Node { return setLetter.Must(s) }
type Builder[R any] struct {
	label string
	fn    func(R) (any, error)
}

// Builder2 is Builder for content methods taking one extra argument.
type Builder2[R, A any] struct {
	label string
	fn    func(R, A) (any, error)
}

// Wrap validates the name of fn, which should be a method expression such as
// (*Basis).tsgLetter, and returns a Builder labeling its groups
// "<Owner>.<Name>". A badly named fn fails here, never at Build time.
func Wrap[R any](fn func(R) (any, error)) (*Builder[R], error) {
	label, err := builderLabel(ownerName[R](), funcname.Of(fn).Func)
	if err != nil {
		return nil, err
	}
	return &Builder[R]{label: label, fn: fn}, nil
}

// WrapNamed is Wrap for functions without a usable runtime name, such as
// closures. The name is validated exactly like a method name.
func WrapNamed[R any](owner, name string, fn func(R) (any, error)) (*Builder[R], error) {
	label, err := builderLabel(owner, name)
	if err != nil {
		return nil, err
	}
	return &Builder[R]{label: label, fn: fn}, nil
}

// MustWrap is Wrap that panics, for package level builder variables.
func MustWrap[R any](fn func(R) (any, error)) *Builder[R] {
	b, err := Wrap(fn)
	if err != nil {
		panic(err)
	}
	return b
}

// Wrap2 is Wrap for content methods taking one extra argument.
func Wrap2[R, A any](fn func(R, A) (any, error)) (*Builder2[R, A], error) {
	label, err := builderLabel(ownerName[R](), funcname.Of(fn).Func)
	if err != nil {
		return nil, err
	}
	return &Builder2[R, A]{label: label, fn: fn}, nil
}

// MustWrap2 is Wrap2 that panics.
func MustWrap2[R, A any](fn func(R, A) (any, error)) *Builder2[R, A] {
	b, err := Wrap2(fn)
	if err != nil {
		panic(err)
	}
	return b
}

// Label is the label attached to every group the builder produces.
func (b *Builder[R]) Label() string {
	return b.label
}

// Build calls the content method and wraps what it returns in a new group.
func (b *Builder[R]) Build(r R) (*Node, error) {
	content, err := b.fn(r)
	if err != nil {
		return nil, errors.Errorf("building %s: %w", b.label, err)
	}
	return wrapContent(b.label, content)
}

// Must is Build that panics. Use it where the content shape is fixed.
func (b *Builder[R]) Must(r R) *Node {
	n, err := b.Build(r)
	if err != nil {
		panic(err)
	}
	return n
}

// Label is the label attached to every group the builder produces.
func (b *Builder2[R, A]) Label() string {
	return b.label
}

// Build calls the content method with a and wraps the result in a new group.
func (b *Builder2[R, A]) Build(r R, a A) (*Node, error) {
	content, err := b.fn(r, a)
	if err != nil {
		return nil, errors.Errorf("building %s: %w", b.label, err)
	}
	return wrapContent(b.label, content)
}

// Must is Build that panics.
func (b *Builder2[R, A]) Must(r R, a A) *Node {
	n, err := b.Build(r, a)
	if err != nil {
		panic(err)
	}
	return n
}

func wrapContent(label string, content any) (*Node, error) {
	n, err := Group([]string{label}, content)
	if err != nil {
		return nil, errors.Errorf("building %s: %w", label, err)
	}
	return n, nil
}

func builderLabel(owner, name string) (string, error) {
	if len(name) <= len(BuilderPrefix) || !strings.EqualFold(name[:len(BuilderPrefix)], BuilderPrefix) {
		return "", errors.Errorf("%q: %w", name, ErrBuilderName)
	}
	if r, _ := utf8.DecodeRuneInString(name[len(BuilderPrefix):]); !unicode.IsUpper(r) {
		return "", errors.Errorf("%q: name after the prefix must start with an upper case letter: %w", name, ErrBuilderName)
	}
	if owner == "" {
		return "", errors.Errorf("%q has no owner type: %w", name, ErrBuilderName)
	}
	return owner + "." + name[len(BuilderPrefix):], nil
}

func ownerName[R any]() string {
	t := reflect.TypeFor[R]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Elems normalises builder content into elements. Accepted shapes are a
// string, a Token, a *Node, or an ordered slice of those.
func Elems(content any) ([]Element, error) {
	switch c := content.(type) {
	case string:
		return []Element{Token(c)}, nil
	case Token:
		return []Element{c}, nil
	case *Node:
		if c == nil {
			return nil, errors.Errorf("nil group: %w", ErrInvalidShape)
		}
		return []Element{c}, nil
	case []Element:
		for i, e := range c {
			if n, ok := e.(*Node); (ok && n == nil) || e == nil {
				return nil, errors.Errorf("element %d is nil: %w", i, ErrInvalidShape)
			}
		}
		return c, nil
	case []string:
		return Tokens(c...), nil
	case []Token:
		out := make([]Element, len(c))
		for i, t := range c {
			out[i] = t
		}
		return out, nil
	case []*Node:
		out := make([]Element, len(c))
		for i, n := range c {
			if n == nil {
				return nil, errors.Errorf("element %d is nil: %w", i, ErrInvalidShape)
			}
			out[i] = n
		}
		return out, nil
	case []any:
		out := make([]Element, 0, len(c))
		for i, v := range c {
			switch v := v.(type) {
			case string:
				out = append(out, Token(v))
			case Token:
				out = append(out, v)
			case *Node:
				if v == nil {
					return nil, errors.Errorf("element %d is nil: %w", i, ErrInvalidShape)
				}
				out = append(out, v)
			default:
				return nil, errors.Errorf("element %d has type %T: %w", i, v, ErrInvalidShape)
			}
		}
		return out, nil
	default:
		return nil, errors.Errorf("content has type %T: %w", content, ErrInvalidShape)
	}
}
