// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/jba/avlmap/internal/report"
	"github.com/jba/avlmap/internal/workload"
)

// NewCompareCommand returns the compare command.
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Time a workload on avlmap and tidwall/btree",
		Args:  cobra.NoArgs,
		RunE:  runCompare,
	}
	workloadFlags(cmd.Flags())
	cmd.Flags().Int("degree", 0, "B-tree degree, 0 for the library default (overrides compare.btree_degree)")
	return cmd
}

func runCompare(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd)
	ops := workload.Generate(cfg.Params())
	logger.Debug("comparing", "ops", len(ops), "degree", cfg.Compare.BTreeDegree)
	timings := workload.Compare(ops, cfg.Compare.BTreeDegree)
	report.New(cmd.OutOrStdout(), cfg.Report.Color).Compare(len(ops), timings)
	return nil
}
