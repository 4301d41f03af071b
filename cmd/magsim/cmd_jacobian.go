// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/magprism/sensitivity"
)

func (a *app) jacobianCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jacobian",
		Short: "Build the sensitivity matrix and report its conditioning",
		Args:  cobra.NoArgs,
		RunE:  a.runJacobian,
	}
}

func (a *app) runJacobian(cmd *cobra.Command, args []string) error {
	sc, err := a.scenario()
	if err != nil {
		return err
	}
	model, err := sc.model()
	if err != nil {
		return fmt.Errorf("build sample: %w", err)
	}
	x, y, z, err := sc.sensors()
	if err != nil {
		return fmt.Errorf("build scan: %w", err)
	}

	opts := []sensitivity.Option{sensitivity.WithLogger(a.logger)}
	if ea := sc.effectiveArea(); ea != nil {
		opts = append(opts, sensitivity.WithEffectiveArea(*ea))
	}
	if sc.Workers > 0 {
		opts = append(opts, sensitivity.WithWorkers(sc.Workers))
	}
	g, err := sensitivity.Jacobian(len(model), x, y, z, model, sc.alpha(), opts...)
	if err != nil {
		return err
	}
	gm, err := g.ToMat()
	if err != nil {
		return err
	}

	r, c := g.Shape()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "shape:     %d x %d\n", r, c)
	fmt.Fprintf(out, "columns:   %v\n", sc.alpha().Columns())
	fmt.Fprintf(out, "cond (2):  %.6g\n", mat.Cond(gm, 2))
	return nil
}
