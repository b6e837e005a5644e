package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/katalvlaran/opsearch/assign"
	"github.com/katalvlaran/opsearch/calibrate"
	"github.com/katalvlaran/opsearch/input"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newSolveCmd prints the total of satisfiable targets in a file.
func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE",
		Short: "Sum the targets of every satisfiable equation in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eqs, err := input.ParseFile(args[0])
			if err != nil {
				return err
			}
			alpha, err := a.cfg.Alphabet()
			if err != nil {
				return err
			}

			start := time.Now()
			opts := append(a.cfg.EngineOptions(a.logger), calibrate.WithContext(cmd.Context()))
			total, err := calibrate.TotalOfSatisfiable(eqs, alpha, opts...)
			if err != nil {
				return err
			}
			a.logger.Info("solved",
				zap.String("file", args[0]),
				zap.Int("equations", len(eqs)),
				zap.Stringer("operators", alpha),
				zap.Uint64("total", total),
				zap.Duration("elapsed", time.Since(start)),
			)
			fmt.Fprintln(cmd.OutOrStdout(), total)

			return nil
		},
	}
}

// newCheckCmd prints a witness expression for one equation.
func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check TARGET OPERAND...",
		Short: "Show an operator assignment that makes one equation true",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]uint64, len(args))
			for i, s := range args {
				v, err := strconv.ParseUint(s, 10, 64)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				values[i] = v
			}
			eq, err := calibrate.NewEquation(values[0], values[1:]...)
			if err != nil {
				return err
			}
			alpha, err := a.cfg.Alphabet()
			if err != nil {
				return err
			}

			opts := append(a.cfg.EngineOptions(a.logger), calibrate.WithContext(cmd.Context()))
			w, ok, err := calibrate.Solve(eq, alpha, opts...)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s unsatisfiable with %s\n", eq, alpha)

				return nil
			}
			expr, err := eq.Render(w)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d = %s\n", eq.Target(), expr)

			return nil
		},
	}
}

// newCountCmd prints kⁿ for a number of slots.
func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count SLOTS",
		Short: "Print how many operator assignments SLOTS gaps admit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("slots: %w", err)
			}
			alpha, err := a.cfg.Alphabet()
			if err != nil {
				return err
			}
			c, err := assign.Count(n, alpha.Len())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)

			return nil
		},
	}
}

// newConfigCmd prints the effective configuration as YAML.
func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
