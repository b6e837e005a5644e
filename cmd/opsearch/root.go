package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/opsearch/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand.
type app struct {
	// Flags
	configPath     string
	verbose        bool
	ops            string
	strategy       string
	workers        int
	maxAssignments uint64

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd wires the command tree around a. A non-nil a.logger is used
// as is; otherwise a production logger is built from the configuration.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "opsearch",
		Short: "Equation operator search",
		Long: `opsearch decides whether the operands of an equation can be joined by
operators, evaluated strictly left to right, to produce its target.

Input lines look like "3267: 81 40 27". Operators: add (+), mul (*),
concat (||, decimal concatenation).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.ops, "ops", "", "comma-separated operators (add,mul,concat)")
	pf.StringVar(&a.strategy, "strategy", "", "search strategy: exhaustive or pruned")
	pf.IntVar(&a.workers, "workers", 0, "equations searched concurrently")
	pf.Uint64Var(&a.maxAssignments, "max-assignments", 0, "refuse equations with more candidate assignments (0 = unlimited)")

	root.AddCommand(
		newSolveCmd(a),
		newCheckCmd(a),
		newCountCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup loads the configuration, applies explicitly set flags over it and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("ops") {
		cfg.Operators = strings.Split(a.ops, ",")
	}
	if flags.Changed("strategy") {
		cfg.Strategy = a.strategy
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("max-assignments") {
		cfg.MaxAssignments = a.maxAssignments
	}
	if a.verbose {
		cfg.LogLevel = zapcore.DebugLevel.String()
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		lvl, _ := cfg.Level()
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
		if a.logger, err = zcfg.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	return nil
}
