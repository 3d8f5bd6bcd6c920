package tsg

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gitlab.com/tozd/go/errors"
)

// DumpOptions controls the diagnostic tree dump.
type DumpOptions struct {
	// Color highlights group headers and annotations.
	Color bool
	// Ranges appends each group's range and each token's position.
	Ranges bool
	// IDs appends each group's ID.
	IDs bool
}

// Dump writes the group hierarchy as a branch-drawn tree:
//
//	Group[]
//	├───x
//	└───Group[Foo.bar]
//	    ├───y
//	    └───z
//
// The output is for humans only.
func (n *Node) Dump(w io.Writer) error {
	return n.DumpWith(w, DumpOptions{})
}

// DumpWith is Dump with options.
func (n *Node) DumpWith(w io.Writer, opts DumpOptions) error {
	n.mustBeIndexed()

	d := &dumper{w: w, opts: opts}
	if opts.Color {
		d.group = color.New(color.FgCyan, color.Bold)
		d.annot = color.New(color.Faint)
		d.group.EnableColor()
		d.annot.EnableColor()
	}

	d.node(n, nil)

	if d.err != nil {
		return errors.Errorf("dumping %s: %w", n, d.err)
	}
	return nil
}

type dumper struct {
	w     io.Writer
	opts  DumpOptions
	group *color.Color
	annot *color.Color
	err   error
}

func (d *dumper) line(finals []bool, text string) {
	if d.err != nil {
		return
	}

	var b strings.Builder
	for i, final := range finals {
		last := i == len(finals)-1
		switch {
		case last && final:
			b.WriteString("└───")
		case last:
			b.WriteString("├───")
		case final:
			b.WriteString("    ")
		default:
			b.WriteString("│   ")
		}
	}
	b.WriteString(text)
	b.WriteByte('\n')

	_, d.err = io.WriteString(d.w, b.String())
}

func (d *dumper) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func (d *dumper) node(n *Node, finals []bool) {
	text := d.paint(d.group, n.String())
	if d.opts.Ranges {
		text += " " + d.paint(d.annot, n.rng.String())
	}
	if d.opts.IDs {
		text += " " + d.paint(d.annot, n.id.String())
	}
	d.line(finals, text)

	pos := n.rng.Start
	for i, e := range n.elts {
		next := append(finals[:len(finals):len(finals)], i == len(n.elts)-1)
		switch e := e.(type) {
		case Token:
			text := string(e)
			if d.opts.Ranges {
				text += " " + d.paint(d.annot, fmt.Sprint(pos))
			}
			d.line(next, text)
			pos++
		case *Node:
			d.node(e, next)
			pos = e.rng.Stop
		}
	}
}
