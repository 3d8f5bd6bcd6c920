package flatten

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gotsg/pkg/treefile"
)

type Handler struct {
	dir      string
	sep      string
	patterns []string
	out      io.Writer
}

func NewFlattenCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "flatten [patterns...]",
		Short: "print the tokens of each tree in order",
	}

	cmd.Flags().StringVar(&me.sep, "sep", " ", "separator between tokens")

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

	for _, t := range trees {
		zerolog.Ctx(ctx).Debug().Str("tree", t.Name).Str("source", t.Source).Msg("flattening")

		if _, err := fmt.Fprintf(me.out, "%s: %s\n", t.Name, strings.Join(t.Root.Flatten(), me.sep)); err != nil {
			return errors.Errorf("writing tree %q: %w", t.Name, err)
		}
	}

	return nil
}
