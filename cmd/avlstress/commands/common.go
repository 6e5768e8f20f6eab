// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands implements the avlstress subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jba/avlmap/internal/config"
)

// Names of the flags shared by all subcommands.
const (
	flagConfig  = "config"
	flagVerbose = "verbose"
	flagQuiet   = "quiet"
	flagNoColor = "no-color"
)

// AddGlobalFlags registers the persistent flags on root.
func AddGlobalFlags(root *cobra.Command) {
	f := root.PersistentFlags()
	f.String(flagConfig, "", "config file (default .avlstress.yaml in CWD or $HOME)")
	f.BoolP(flagVerbose, "v", false, "verbose output")
	f.BoolP(flagQuiet, "q", false, "suppress log output")
	f.Bool(flagNoColor, false, "disable colored status")
}

// workloadFlags registers the flags that override workload settings.
func workloadFlags(f *pflag.FlagSet) {
	f.Uint64("seed", 0, "random seed (overrides workload.seed)")
	f.Int("ops", 0, "number of operations (overrides workload.ops)")
	f.Int("keys", 0, "size of the key space (overrides workload.key_space)")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString(flagConfig)
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Workload.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("ops") {
		cfg.Workload.Ops, _ = f.GetInt("ops")
	}
	if f.Changed("keys") {
		cfg.Workload.KeySpace, _ = f.GetInt("keys")
	}
	if f.Changed("check-every") {
		cfg.Workload.CheckEvery, _ = f.GetInt("check-every")
	}
	if f.Changed("degree") {
		cfg.Compare.BTreeDegree, _ = f.GetInt("degree")
	}
	if noColor, _ := f.GetBool(flagNoColor); noColor {
		cfg.Report.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns the logger selected by --verbose and --quiet.
func newLogger(cmd *cobra.Command) *slog.Logger {
	quiet, _ := cmd.Flags().GetBool(flagQuiet)
	if quiet {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
