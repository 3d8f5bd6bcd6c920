package dump

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gotsg/pkg/treefile"
	"github.com/walteh/gotsg/pkg/tsg"
)

type Handler struct {
	dir      string
	opts     tsg.DumpOptions
	patterns []string
	out      io.Writer
}

func NewDumpCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "dump [patterns...]",
		Short: "draw the structure of each tree",
	}

	cmd.Flags().BoolVar(&me.opts.Color, "color", false, "color labels and tokens")
	cmd.Flags().BoolVar(&me.opts.Ranges, "ranges", false, "show the token range of every group")
	cmd.Flags().BoolVar(&me.opts.IDs, "ids", false, "show the identity of every group")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.dir = cmd.Flag("dir").Value.String()
		me.patterns = args
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

	for i, t := range trees {
		if i > 0 {
			fmt.Fprintln(me.out)
		}
		fmt.Fprintf(me.out, "# %s (%s)\n", t.Name, t.Source)

		if err := t.Root.DumpWith(me.out, me.opts); err != nil {
			return errors.Errorf("dumping tree %q: %w", t.Name, err)
		}
	}

	return nil
}
