package find

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gotsg/pkg/treefile"
	"github.com/walteh/gotsg/pkg/tsg"
)

var ErrNoQuery = errors.Base("one of --label or --str is required")

type Handler struct {
	dir        string
	labels     []string
	strs       []string
	depthStart int
	depthStop  int
	nodes      bool
	patterns   []string
	out        io.Writer
}

func NewFindCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "find [patterns...]",
		Short: "find labeled groups or tokens in each tree",
	}

	cmd.Flags().StringSliceVar(&me.labels, "label", nil, "label to search for; a dotted label matches exactly, anything else as a substring")
	cmd.Flags().StringSliceVar(&me.strs, "str", nil, "token to search for, ignoring case")
	cmd.Flags().IntVar(&me.depthStart, "depth-start", 0, "shallowest depth searched")
	cmd.Flags().IntVar(&me.depthStop, "depth-stop", -1, "depth the search stops before; negative for no limit")
	cmd.Flags().BoolVar(&me.nodes, "nodes", false, "print the matched groups and their tokens")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.dir = cmd.Flag("dir").Value.String()
		me.patterns = args
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context())
	}

	return cmd
}

func (me *Handler) depth() tsg.DepthRange {
	d := tsg.DepthRange{Start: me.depthStart, Stop: me.depthStop}
	if d.Stop < 0 {
		d.Stop = math.MaxInt
	}
	return d
}

func (me *Handler) Run(ctx context.Context) error {
	if len(me.labels) == 0 && len(me.strs) == 0 {
		return ErrNoQuery
	}

	trees, err := treefile.NewDirLoader(me.dir).LoadGlob(ctx, me.patterns...)
	if err != nil {
		return errors.Errorf("loading trees: %w", err)
	}

	depth := me.depth()
	zerolog.Ctx(ctx).Debug().Strs("labels", me.labels).Strs("strs", me.strs).Int("depth_start", depth.Start).Int("depth_stop", depth.Stop).Msg("searching")

	for _, t := range trees {
		search := t.Root.Within(depth)

		fmt.Fprintf(me.out, "%s:\n", t.Name)

		if len(me.labels) > 0 {
			if me.nodes {
				for _, n := range search.FindNodesByLabel(me.labels...) {
					fmt.Fprintf(me.out, "  %s %s %s\n", n.Range(), n, strings.Join(n.Flatten(), " "))
				}
			} else {
				fmt.Fprintf(me.out, "  labels: %s\n", joinRanges(search.FindByLabel(me.labels...)))
			}
		}

		if len(me.strs) > 0 {
			fmt.Fprintf(me.out, "  tokens: %s\n", joinInts(search.FindByStr(me.strs...)))
		}
	}

	return nil
}

func joinRanges(rs []tsg.Range) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
