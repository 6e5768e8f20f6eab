// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Avlstress drives randomized workloads through avlmap, checking every
// result against a B-tree and validating the tree structure as it goes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jba/avlmap/cmd/avlstress/commands"
)

// version is set at build time with -ldflags.
var version = "devel"

func main() {
	rootCmd := &cobra.Command{
		Use:   "avlstress",
		Short: "Stress and cross-check the avlmap ordered map",
		Long: `Avlstress runs seeded random insert/erase/index/find workloads.

Commands:
  run       apply a workload, checking every result and the tree invariants
  compare   time the same workload on avlmap and tidwall/btree`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	commands.AddGlobalFlags(rootCmd)
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewCompareCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "avlstress %s\n", version)
		},
	}
}
