// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/jba/avlmap/internal/report"
	"github.com/jba/avlmap/internal/workload"
)

// NewRunCommand returns the run command.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply a checked random workload",
		Long: `Run applies a seeded random workload to an avlmap.Map and a B-tree,
compares the result of every operation, and periodically validates
the AVL tree, its in-order list and its size.`,
		Args: cobra.NoArgs,
		RunE: runRun,
	}
	workloadFlags(cmd.Flags())
	cmd.Flags().Int("check-every", 0, "validate every N operations (overrides workload.check_every)")
	return cmd
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)
	p := cfg.Params()
	logger.Info("generating workload", "seed", p.Seed, "ops", p.Ops, "keys", p.KeySpace)
	ops := workload.Generate(p)

	res, runErr := workload.Run(cmd.Context(), ops, cfg.Workload.CheckEvery, logger)
	report.New(cmd.OutOrStdout(), cfg.Report.Color).Run(res, runErr)
	if runErr != nil {
		logger.Error("workload failed", "seed", p.Seed, "error", runErr)
		return errors.Wrapf(runErr, "seed %d", p.Seed)
	}
	logger.Info("workload passed", "elapsed", res.Elapsed, "size", res.FinalLen)
	return nil
}
