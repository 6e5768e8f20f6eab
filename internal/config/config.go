// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the avlstress configuration.
package config

import (
	"github.com/cockroachdb/errors"

	"github.com/jba/avlmap/internal/workload"
)

// Default configuration values.
const (
	DefaultSeed        = 1
	DefaultOps         = 100_000
	DefaultKeySpace    = 10_000
	DefaultEraseRatio  = 0.3
	DefaultIndexRatio  = 0.1
	DefaultCheckEvery  = 1_000
	DefaultBTreeDegree = 32
	DefaultColor       = true
)

// Config is the complete avlstress configuration.
type Config struct {
	Workload WorkloadConfig `mapstructure:"workload"`
	Compare  CompareConfig  `mapstructure:"compare"`
	Report   ReportConfig   `mapstructure:"report"`
}

// WorkloadConfig shapes the generated operations.
type WorkloadConfig struct {
	Seed       uint64  `mapstructure:"seed"`
	Ops        int     `mapstructure:"ops"`
	KeySpace   int     `mapstructure:"key_space"`
	EraseRatio float64 `mapstructure:"erase_ratio"`
	IndexRatio float64 `mapstructure:"index_ratio"`
	CheckEvery int     `mapstructure:"check_every"`
}

// CompareConfig configures the compare command.
type CompareConfig struct {
	BTreeDegree int `mapstructure:"btree_degree"`
}

// ReportConfig configures output.
type ReportConfig struct {
	Color bool `mapstructure:"color"`
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	w := c.Workload
	switch {
	case w.Ops < 0:
		return errors.Newf("workload.ops must not be negative, got %d", w.Ops)
	case w.KeySpace <= 0:
		return errors.Newf("workload.key_space must be positive, got %d", w.KeySpace)
	case w.EraseRatio < 0 || w.IndexRatio < 0:
		return errors.New("workload ratios must not be negative")
	case w.EraseRatio+w.IndexRatio > 0.9:
		return errors.Newf("workload.erase_ratio + workload.index_ratio must be at most 0.9, got %g",
			w.EraseRatio+w.IndexRatio)
	case c.Compare.BTreeDegree < 0:
		return errors.Newf("compare.btree_degree must not be negative, got %d", c.Compare.BTreeDegree)
	}
	return nil
}

// Params returns the workload parameters described by c.
func (c *Config) Params() workload.Params {
	return workload.Params{
		Seed:       c.Workload.Seed,
		Ops:        c.Workload.Ops,
		KeySpace:   c.Workload.KeySpace,
		EraseRatio: c.Workload.EraseRatio,
		IndexRatio: c.Workload.IndexRatio,
	}
}
