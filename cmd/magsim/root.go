// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by subcommands: flags and the logger built in
// PersistentPreRunE.
type app struct {
	configPath string
	debug      bool
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "magsim",
		Short: "Forward-model magnetic scans of a prism sample",
		Long: `magsim evaluates the magnetic field of a magnetized prism array on a
scanning plane, builds its sensitivity matrix, and estimates the noise added
by magnetic grains. Every subcommand reads the survey from --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.debug {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "scenario.yaml", "Scenario YAML file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	root.AddCommand(a.fieldCmd(), a.jacobianCmd(), a.noiseCmd())

	return root
}

// scenario loads the configured scenario and logs its outline.
func (a *app) scenario() (*Scenario, error) {
	sc, err := loadScenario(a.configPath)
	if err != nil {
		return nil, err
	}
	a.logger.Info("scenario loaded",
		zap.String("path", a.configPath),
		zap.Int("prisms", sc.Sample.Prisms),
		zap.Stringer("plane", sc.alpha()),
		zap.Bool("averaged", sc.Sensor != nil),
		zap.Bool("grains", sc.Grains != nil),
	)
	return sc, nil
}
