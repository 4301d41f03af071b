// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/magprism/forward"
)

func (a *app) fieldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "field",
		Short: "Evaluate the forward field on the scanning plane",
		Long: `Build the sample (and grains, when configured), lay the scanning plane and
print the number of sensors with the min, max and mean field in nT.`,
		Args: cobra.NoArgs,
		RunE: a.runField,
	}
}

func (a *app) runField(cmd *cobra.Command, args []string) error {
	sc, err := a.scenario()
	if err != nil {
		return err
	}
	data, err := a.evaluate(sc, sc.Grains != nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "component: %s\n", sc.alpha().Field())
	fmt.Fprintf(out, "sensors:   %d\n", len(data))
	if len(data) > 0 {
		fmt.Fprintf(out, "min (nT):  %.6g\n", floats.Min(data))
		fmt.Fprintf(out, "max (nT):  %.6g\n", floats.Max(data))
		fmt.Fprintf(out, "mean (nT): %.6g\n", stat.Mean(data, nil))
	}
	return nil
}

// evaluate runs the forward model for sc, optionally with its grains.
func (a *app) evaluate(sc *Scenario, withGrains bool) ([]float64, error) {
	model, err := sc.model()
	if err != nil {
		return nil, fmt.Errorf("build sample: %w", err)
	}
	x, y, z, err := sc.sensors()
	if err != nil {
		return nil, fmt.Errorf("build scan: %w", err)
	}

	opts := []forward.Option{forward.WithLogger(a.logger)}
	if ea := sc.effectiveArea(); ea != nil {
		opts = append(opts, forward.WithEffectiveArea(*ea))
	}
	if sc.Workers > 0 {
		opts = append(opts, forward.WithWorkers(sc.Workers))
	}
	if withGrains {
		grains, err := sc.grains()
		if err != nil {
			return nil, fmt.Errorf("build grains: %w", err)
		}
		opts = append(opts, forward.WithGrains(grains))
	}

	return forward.Field(x, y, z, model, sc.alpha(), opts...)
}
