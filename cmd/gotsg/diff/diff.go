package diff

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gotsg/pkg/diff"
	"github.com/walteh/gotsg/pkg/treefile"
)

var (
	ErrTreesDiffer = errors.Base("trees differ")
	ErrUnknownTree = errors.Base("unknown tree")
)

type Handler struct {
	dir      string
	want     string
	got      string
	patterns []string
	out      io.Writer
}

func NewDiffCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "diff <expected> <actual> [patterns...]",
		Short: "compare two named trees",
		Args:  cobra.MinimumNArgs(2),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.dir = cmd.Flag("dir").Value.String()
		me.want, me.got, me.patterns = args[0], args[1], args[2:]
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context) error {
	trees, err := treefile.NewDirLoader(me.dir).LoadGlob(ctx, me.patterns...)
	if err != nil {
		return errors.Errorf("loading trees: %w", err)
	}

	byName := make(map[string]*treefile.Tree, len(trees))
	for _, t := range trees {
		if _, ok := byName[t.Name]; !ok {
			byName[t.Name] = t
		}
	}

	want, ok := byName[me.want]
	if !ok {
		return errors.Errorf("%q: %w", me.want, ErrUnknownTree)
	}
	got, ok := byName[me.got]
	if !ok {
		return errors.Errorf("%q: %w", me.got, ErrUnknownTree)
	}

	d, err := diff.Trees(want.Root, got.Root)
	if err != nil {
		return err
	}
	if d == "" {
		fmt.Fprintf(me.out, "%s and %s match\n", want.Name, got.Name)
		return nil
	}

	fmt.Fprintln(me.out, d)

	return errors.Errorf("%s and %s: %w", want.Name, got.Name, ErrTreesDiffer)
}
