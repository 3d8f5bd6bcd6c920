// Package probability builds notation for events, random variables and
// entropy.
package probability

import (
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gotsg/pkg/tsg"
)

// ErrShortForm is returned when p_x notation is asked for a probability of
// several events or a conditional one.
var ErrShortForm = errors.Base("short form needs exactly one unconditioned event")

var (
	probP    = tsg.MustWrap((*Probability).tsgP)
	probFull = tsg.MustWrap((*Probability).tsgFull)

	eventFull = tsg.MustWrap((*Event).tsgFull)

	rvLetter = tsg.MustWrap((*RandomVariable).tsgLetter)
	rvFromTo = tsg.MustWrap((*RandomVariable).tsgFromTo)

	rvEventValue = tsg.MustWrap((*RandomVariableEvent).tsgValue)
	rvEventFull  = tsg.MustWrap((*RandomVariableEvent).tsgFull)

	rvProbP     = tsg.MustWrap((*RandomVariableProbability).tsgP)
	rvProbShort = tsg.MustWrap((*RandomVariableProbability).tsgShort)
	rvProbFull  = tsg.MustWrap((*RandomVariableProbability).tsgFull)

	entropyLHS      = tsg.MustWrap((*RandomVariableEntropy).tsgLHS)
	entropyRHS      = tsg.MustWrap((*RandomVariableEntropy).tsgRHS)
	entropyRHSShort = tsg.MustWrap((*RandomVariableEntropy).tsgRHSShort)
	entropyFull     = tsg.MustWrap((*RandomVariableEntropy).tsgFull)
)

// Probability is P(event).
type Probability struct {
	of *Event
}

func NewProbability(of *Event) *Probability {
	return &Probability{of: of}
}

func (p *Probability) tsgP() (any, error) {
	return `\mathbb{P}`, nil
}

func (p *Probability) P() *tsg.Node {
	return probP.Must(p)
}

func (p *Probability) tsgFull() (any, error) {
	return []any{p.P(), "(", p.of.Full(), ")"}, nil
}

func (p *Probability) Full() *tsg.Node {
	return probFull.Must(p)
}

// Event is written as a letter or as a composition of other events.
type Event struct {
	letter tsg.Element
}

func NewEvent(letter string) *Event {
	return &Event{letter: tsg.Token(letter)}
}

func (e *Event) tsgFull() (any, error) {
	return []tsg.Element{e.letter}, nil
}

func (e *Event) Full() *tsg.Node {
	return eventFull.Must(e)
}

func (e *Event) join(op string, rhs *Event) *Event {
	return &Event{letter: tsg.New(e.letter, tsg.Token(op), rhs.letter)}
}

// And is the intersection A \cap B.
func (e *Event) And(rhs *Event) *Event {
	return e.join(`\cap`, rhs)
}

// Or is the union A \cup B.
func (e *Event) Or(rhs *Event) *Event {
	return e.join(`\cup`, rhs)
}

// Given is the conditioned event A | B.
func (e *Event) Given(rhs *Event) *Event {
	return e.join("|", rhs)
}

// RandomVariable is X : \Omega \to \mathbb{R}.
type RandomVariable struct {
	letter       string
	space        string
	to           string
	defaultEvent string
}

type RandomVariableOption func(*RandomVariable)

func WithSpace(space string) RandomVariableOption {
	return func(rv *RandomVariable) { rv.space = space }
}

func WithCodomain(to string) RandomVariableOption {
	return func(rv *RandomVariable) { rv.to = to }
}

// WithDefaultEventLetter sets the value letter used by events built without one.
func WithDefaultEventLetter(letter string) RandomVariableOption {
	return func(rv *RandomVariable) { rv.defaultEvent = letter }
}

func NewRandomVariable(letter string, opts ...RandomVariableOption) *RandomVariable {
	rv := &RandomVariable{
		letter:       letter,
		space:        `\Omega`,
		to:           `\mathbb{R}`,
		defaultEvent: "x",
	}
	for _, opt := range opts {
		opt(rv)
	}
	return rv
}

func (rv *RandomVariable) tsgLetter() (any, error) {
	return rv.letter, nil
}

func (rv *RandomVariable) Letter() *tsg.Node {
	return rvLetter.Must(rv)
}

func (rv *RandomVariable) tsgFromTo() (any, error) {
	return []string{rv.letter, ":", rv.space, `\to`, rv.to}, nil
}

func (rv *RandomVariable) FromTo() *tsg.Node {
	return rvFromTo.Must(rv)
}

// RandomVariableEvent is the event X = x.
type RandomVariableEvent struct {
	rv    *RandomVariable
	value string
}

// NewRandomVariableEvent uses the variable's default event letter when value is empty.
func NewRandomVariableEvent(rv *RandomVariable, value string) *RandomVariableEvent {
	if value == "" {
		value = rv.defaultEvent
	}
	return &RandomVariableEvent{rv: rv, value: value}
}

func (e *RandomVariableEvent) Probability() *RandomVariableProbability {
	return NewRandomVariableProbability([]*RandomVariableEvent{e}, nil)
}

func (e *RandomVariableEvent) tsgValue() (any, error) {
	return e.value, nil
}

func (e *RandomVariableEvent) Value() *tsg.Node {
	return rvEventValue.Must(e)
}

func (e *RandomVariableEvent) tsgFull() (any, error) {
	return []any{e.rv.Letter(), "=", e.Value()}, nil
}

func (e *RandomVariableEvent) Full() *tsg.Node {
	return rvEventFull.Must(e)
}

// RandomVariableProbability is P(X = x, … | Y = y, …).
type RandomVariableProbability struct {
	events []*RandomVariableEvent
	given  []*RandomVariableEvent
}

func NewRandomVariableProbability(events, given []*RandomVariableEvent) *RandomVariableProbability {
	return &RandomVariableProbability{events: events, given: given}
}

func (p *RandomVariableProbability) tsgP() (any, error) {
	return `\mathbb{P}`, nil
}

func (p *RandomVariableProbability) P() *tsg.Node {
	return rvProbP.Must(p)
}

func (p *RandomVariableProbability) tsgShort() (any, error) {
	if len(p.events) != 1 || len(p.given) != 0 {
		return nil, errors.Errorf("%d events given %d: %w", len(p.events), len(p.given), ErrShortForm)
	}
	return []any{"p", "_{", p.events[0].Value(), "}"}, nil
}

// Short writes p_{x}.
func (p *RandomVariableProbability) Short() (*tsg.Node, error) {
	return rvProbShort.Build(p)
}

func (p *RandomVariableProbability) tsgFull() (any, error) {
	out := []tsg.Element{p.P(), tsg.Token("(")}
	out = append(out, fullEvents(p.events)...)
	if len(p.given) > 0 {
		out = append(out, tsg.Token("|"))
		out = append(out, fullEvents(p.given)...)
	}
	out = append(out, tsg.Token(")"))
	return out, nil
}

func (p *RandomVariableProbability) Full() *tsg.Node {
	return rvProbFull.Must(p)
}

func fullEvents(events []*RandomVariableEvent) []tsg.Element {
	elts := make([]tsg.Element, len(events))
	for i, e := range events {
		elts[i] = e.Full()
	}
	return tsg.Intersperse(elts, tsg.Element(tsg.Token(",")))
}

// RandomVariableEntropy is H(X) = -\sum_x p_x \log_2 p_x.
type RandomVariableEntropy struct {
	rv *RandomVariable
}

func NewRandomVariableEntropy(rv *RandomVariable) *RandomVariableEntropy {
	return &RandomVariableEntropy{rv: rv}
}

func (h *RandomVariableEntropy) tsgLHS() (any, error) {
	return []any{"H", "(", h.rv.Letter(), ")"}, nil
}

func (h *RandomVariableEntropy) LHS() *tsg.Node {
	return entropyLHS.Must(h)
}

func (h *RandomVariableEntropy) sum() []any {
	return []any{"-", `\sum`, "_{", h.rv.defaultEvent, "}"}
}

func (h *RandomVariableEntropy) tsgRHS() (any, error) {
	p := NewRandomVariableEvent(h.rv, "").Probability()
	return append(h.sum(), p.Full(), `\log`, "_2", "(", p.Full(), ")"), nil
}

func (h *RandomVariableEntropy) RHS() *tsg.Node {
	return entropyRHS.Must(h)
}

func (h *RandomVariableEntropy) tsgRHSShort() (any, error) {
	p := NewRandomVariableEvent(h.rv, "").Probability()

	first, err := p.Short()
	if err != nil {
		return nil, err
	}
	second, err := p.Short()
	if err != nil {
		return nil, err
	}

	return append(h.sum(), first, `\log`, "_2", second), nil
}

func (h *RandomVariableEntropy) RHSShort() *tsg.Node {
	return entropyRHSShort.Must(h)
}

func (h *RandomVariableEntropy) tsgFull() (any, error) {
	return []any{h.LHS(), "=", h.RHSShort()}, nil
}

func (h *RandomVariableEntropy) Full() *tsg.Node {
	return entropyFull.Must(h)
}
