// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, uint64(DefaultSeed), cfg.Workload.Seed)
	assert.Equal(t, DefaultOps, cfg.Workload.Ops)
	assert.Equal(t, DefaultKeySpace, cfg.Workload.KeySpace)
	assert.InDelta(t, DefaultEraseRatio, cfg.Workload.EraseRatio, 1e-9)
	assert.Equal(t, DefaultCheckEvery, cfg.Workload.CheckEvery)
	assert.Equal(t, DefaultBTreeDegree, cfg.Compare.BTreeDegree)
	assert.True(t, cfg.Report.Color)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stress.yaml")
	data := `workload:
  seed: 42
  ops: 10
  key_space: 5
report:
  color: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Workload.Seed)
	assert.Equal(t, 10, cfg.Workload.Ops)
	assert.Equal(t, 5, cfg.Workload.KeySpace)
	assert.False(t, cfg.Report.Color)
	assert.Equal(t, DefaultCheckEvery, cfg.Workload.CheckEvery)

	p := cfg.Params()
	assert.Equal(t, uint64(42), p.Seed)
	assert.Equal(t, 5, p.KeySpace)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AVLSTRESS_WORKLOAD_OPS", "77")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Workload.Ops)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workload:\n  key_space: 0\n"), 0o600))
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key_space")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Workload: WorkloadConfig{Ops: 1, KeySpace: 1, EraseRatio: 0.3, IndexRatio: 0.1}}
	}
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"negative ops", func(c *Config) { c.Workload.Ops = -1 }, false},
		{"no keys", func(c *Config) { c.Workload.KeySpace = 0 }, false},
		{"negative ratio", func(c *Config) { c.Workload.EraseRatio = -0.1 }, false},
		{"ratios too large", func(c *Config) { c.Workload.EraseRatio = 0.85 }, false},
		{"negative degree", func(c *Config) { c.Compare.BTreeDegree = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
