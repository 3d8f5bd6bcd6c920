// Package demo renders the change of basis example: the matrix of a linear
// map applied to a vector.
package demo

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gotsg/pkg/linalg"
	"github.com/walteh/gotsg/pkg/tsg"
)

type Handler struct {
	color bool
	out   io.Writer
}

func NewDemoCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "build and inspect a linear map matrix multiplication",
		Args:  cobra.NoArgs,
	}

	cmd.Flags().BoolVar(&me.color, "color", false, "color the dump")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context())
	}

	return cmd
}

// Build returns [α(v)]_C = [α]_{B,C} · [v]_B for α : V → W.
func Build() (*tsg.Node, error) {
	v, err := linalg.NewVectorSpace("V", linalg.Variadic("n"))
	if err != nil {
		return nil, err
	}
	v.SetBasis(linalg.NewBasis(v, "B", "e"))

	w, err := linalg.NewVectorSpace("W", linalg.Variadic("m"))
	if err != nil {
		return nil, err
	}
	w.SetBasis(linalg.NewBasis(w, "C", "e'"))

	alpha := linalg.NewLinearMap(`\alpha`, v, w)

	return alpha.ReprMatrixMult(linalg.NewVector(v, tsg.Token("v")))
}

func (me *Handler) Run(ctx context.Context) error {
	root, err := Build()
	if err != nil {
		return errors.Errorf("building demo: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Stringer("root", root).Int("tokens", root.Range().Len()).Msg("built demo")

	fmt.Fprintf(me.out, "tokens: %s\n", strings.Join(root.Flatten(), ""))

	if err := root.DumpWith(me.out, tsg.DumpOptions{Color: me.color, Ranges: true}); err != nil {
		return err
	}

	for _, label := range []string{"Basis.Letter", "LinearMap.Argument"} {
		fmt.Fprintf(me.out, "%s:", label)
		for _, r := range root.FindByLabel(label) {
			fmt.Fprintf(me.out, " %s", r)
		}
		fmt.Fprintln(me.out)
	}

	fmt.Fprint(me.out, "brackets:")
	for _, p := range root.FindByStr("[", "]") {
		fmt.Fprintf(me.out, " %s", strconv.Itoa(p))
	}
	fmt.Fprintln(me.out)

	return nil
}
