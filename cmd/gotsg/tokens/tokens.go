package tokens

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apparentlymart/go-textseg/v13/textseg"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gotsg/pkg/treefile"
	"github.com/walteh/gotsg/pkg/tsg"
)

type Handler struct {
	dir      string
	patterns []string
	out      io.Writer
}

func NewTokensCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "tokens [patterns...]",
		Short: "list every token with its position and enclosing labels",
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.dir = cmd.Flag("dir").Value.String()
		me.patterns = args
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context())
	}

	return cmd
}

// Row is one token of a tree. Chain holds the labels of every labeled group
// enclosing the token, outermost first.
type Row struct {
	Pos   int
	Text  string
	Chain []string
}

// Rows lists the tokens of root in order.
func Rows(root *tsg.Node) []Row {
	var out []Row

	var walk func(n *tsg.Node, chain []string)
	walk = func(n *tsg.Node, chain []string) {
		if labels := n.Labels(); len(labels) > 0 {
			chain = append(chain[:len(chain):len(chain)], strings.Join(labels, ","))
		}
		for _, e := range n.Elements() {
			switch e := e.(type) {
			case tsg.Token:
				out = append(out, Row{Pos: len(out), Text: string(e), Chain: chain})
			case *tsg.Node:
				walk(e, chain)
			}
		}
	}
	walk(root, nil)

	return out
}

// width counts user perceived characters, so combining marks do not push
// later columns out of line.
func width(s string) int {
	n, err := textseg.TokenCount([]byte(s), textseg.ScanGraphemeClusters)
	if err != nil {
		return len(s)
	}
	return n
}

func pad(s string, w int) string {
	if n := width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

// Format writes rows as aligned columns of position, token and label chain.
func Format(w io.Writer, rows []Row) error {
	posWidth, textWidth := 1, 1
	for _, r := range rows {
		posWidth = max(posWidth, len(strconv.Itoa(r.Pos)))
		textWidth = max(textWidth, width(r.Text))
	}

	for _, r := range rows {
		line := fmt.Sprintf("%*d  %s  %s", posWidth, r.Pos, pad(r.Text, textWidth), strings.Join(r.Chain, " > "))
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return errors.Errorf("writing token %d: %w", r.Pos, err)
		}
	}

	return nil
}

func (me *Handler) Run(ctx context.Context) error {
	trees, err := treefile.NewDirLoader(me.dir).LoadGlob(ctx, me.patterns...)
	if err != nil {
		return errors.Errorf("loading trees: %w", err)
	}

	for i, t := range trees {
		if i > 0 {
			fmt.Fprintln(me.out)
		}
		fmt.Fprintf(me.out, "# %s\n", t.Name)

		if err := Format(me.out, Rows(t.Root)); err != nil {
			return errors.Errorf("tree %q: %w", t.Name, err)
		}
	}

	return nil
}
