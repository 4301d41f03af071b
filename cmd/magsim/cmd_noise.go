// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/magprism/residual"
)

func (a *app) noiseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "noise",
		Short: "Estimate the field noise caused by magnetic grains",
		Long: `Evaluate the field with and without the configured grains and print the
statistics of the difference, i.e. the grain-noise level in nT.`,
		Args: cobra.NoArgs,
		RunE: a.runNoise,
	}
}

func (a *app) runNoise(cmd *cobra.Command, args []string) error {
	sc, err := a.scenario()
	if err != nil {
		return err
	}
	if sc.Grains == nil {
		return errNoGrains
	}
	clean, err := a.evaluate(sc, false)
	if err != nil {
		return err
	}
	noisy, err := a.evaluate(sc, true)
	if err != nil {
		return err
	}
	st, err := residual.Compute(noisy, clean)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sensors:         %d\n", len(clean))
	fmt.Fprintf(out, "noise mean (nT): %.6g\n", st.Mean)
	fmt.Fprintf(out, "noise std (nT):  %.6g\n", st.Std)
	fmt.Fprintf(out, "max |z-score|:   %.4g\n", floats.Norm(st.Normalized, math.Inf(1)))
	return nil
}
