// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package workload

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestGenerateDeterministic(t *testing.T) {
	p := Params{Seed: 7, Ops: 500, KeySpace: 50, EraseRatio: 0.3, IndexRatio: 0.1}
	a := Generate(p)
	b := Generate(p)
	require.Len(t, a, 500)
	assert.Equal(t, a, b)

	p.Seed = 8
	assert.NotEqual(t, a, Generate(p))

	kinds := map[Kind]int{}
	for _, op := range a {
		require.GreaterOrEqual(t, op.Key, 0)
		require.Less(t, op.Key, 50)
		kinds[op.Kind]++
	}
	for _, k := range []Kind{Insert, Erase, Index, Find} {
		assert.Positive(t, kinds[k], "no %s ops generated", k)
	}
}

func TestRun(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		ops := Generate(Params{Seed: seed, Ops: 5000, KeySpace: 400, EraseRatio: 0.35, IndexRatio: 0.1})
		res, err := Run(context.Background(), ops, 250, discard)
		require.NoError(t, err, "seed %d", seed)
		c := res.Counts
		assert.Equal(t, 5000, c.Inserts+c.Duplicates+c.Erases+c.Misses+c.Indexes+c.Finds)
		assert.Equal(t, 5000/250+1, c.Checks)
		assert.Positive(t, res.FinalLen)
		assert.LessOrEqual(t, res.FinalLen, 400)
	}
}

func TestRunEmpty(t *testing.T) {
	res, err := Run(context.Background(), nil, 0, discard)
	require.NoError(t, err)
	assert.Equal(t, 0, res.FinalLen)
	assert.Equal(t, -1, res.Depth)
	assert.Equal(t, 1, res.Counts.Checks)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ops := Generate(Params{Seed: 1, Ops: 10, KeySpace: 10})
	_, err := Run(ctx, ops, 0, discard)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompare(t *testing.T) {
	ops := Generate(Params{Seed: 3, Ops: 2000, KeySpace: 100, EraseRatio: 0.3, IndexRatio: 0.1})
	timings := Compare(ops, 0)
	require.Len(t, timings, 2)
	assert.Equal(t, "avlmap", timings[0].Name)
	assert.Equal(t, timings[0].FinalLen, timings[1].FinalLen, "implementations disagree on final size")
	assert.Equal(t, timings[0].Elapsed/2000, timings[0].PerOp(2000))
	assert.Zero(t, timings[0].PerOp(0))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "erase", Erase.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
