// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tomtranjr/msds601-highdim-group9/internal/config"
)

// app carries state shared by subcommands after the root pre-run.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger zerolog.Logger
}

// Execute runs the CLI with process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd(ctx).ExecuteContext(ctx)
}

func newRootCmd(ctx context.Context) *cobra.Command {
	a := &app{logger: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "highdim",
		Short:         "Full-column-rank diagnostic for OLS design matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: auto, console, json (overrides config)")

	root.AddCommand(serveCmd(ctx, a), diagnoseCmd(a), selfcheckCmd(a))

	return root
}

// init loads configuration and installs the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	log.Logger = logger

	return nil
}
