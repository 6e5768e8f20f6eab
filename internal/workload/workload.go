// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package workload generates randomized operation sequences and runs them
// against an avlmap.Map, checking each result against a B-tree.
package workload

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/btree"

	"github.com/jba/avlmap"
)

// A Kind is a kind of map operation.
type Kind int

const (
	Insert Kind = iota
	Erase
	Index
	Find
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Erase:
		return "erase"
	case Index:
		return "index"
	case Find:
		return "find"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// An Op is one operation on a map.
type Op struct {
	Kind  Kind
	Key   int
	Value int
}

// Params shapes a generated workload.
type Params struct {
	Seed       uint64
	Ops        int
	KeySpace   int
	EraseRatio float64
	IndexRatio float64
}

// Generate returns p.Ops operations on keys in [0, p.KeySpace).
// The same Params always produce the same operations.
func Generate(p Params) []Op {
	r := rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))
	ops := make([]Op, p.Ops)
	for i := range ops {
		op := Op{Key: r.IntN(p.KeySpace), Value: i + 1}
		switch f := r.Float64(); {
		case f < p.EraseRatio:
			op.Kind = Erase
		case f < p.EraseRatio+p.IndexRatio:
			op.Kind = Index
		case f < p.EraseRatio+p.IndexRatio+0.1:
			op.Kind = Find
		default:
			op.Kind = Insert
		}
		ops[i] = op
	}
	return ops
}

// Counts tallies what a run did.
type Counts struct {
	Inserts    int
	Duplicates int
	Erases     int
	Misses     int
	Indexes    int
	Finds      int
	Checks     int
}

// Result describes a finished run.
type Result struct {
	Ops      int
	Counts   Counts
	FinalLen int
	Depth    int
	Elapsed  time.Duration
}

// Run applies ops to a fresh map and to a B-tree oracle, comparing the
// result of every operation. Every checkEvery operations, and at the end,
// it validates the map's structure and compares its full contents with
// the oracle. checkEvery <= 0 checks only at the end.
func Run(ctx context.Context, ops []Op, checkEvery int, logger *slog.Logger) (Result, error) {
	var (
		m      avlmap.Map[int, int]
		oracle = btree.NewMap[int, int](0)
		res    = Result{Ops: len(ops)}
		start  = time.Now()
	)
	for i, op := range ops {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		if err := apply(&m, oracle, op, &res.Counts); err != nil {
			return res, errors.Wrapf(err, "op %d (%s %d)", i, op.Kind, op.Key)
		}
		if checkEvery > 0 && (i+1)%checkEvery == 0 {
			if err := check(&m, oracle); err != nil {
				return res, errors.Wrapf(err, "after op %d", i)
			}
			res.Counts.Checks++
			logger.Debug("checkpoint", "op", i+1, "len", m.Len(), "depth", m.Depth())
		}
	}
	if err := check(&m, oracle); err != nil {
		return res, errors.Wrap(err, "final check")
	}
	res.Counts.Checks++
	res.FinalLen = m.Len()
	res.Depth = m.Depth()
	res.Elapsed = time.Since(start)
	return res, nil
}

func apply(m *avlmap.Map[int, int], oracle *btree.Map[int, int], op Op, c *Counts) error {
	want, present := oracle.Get(op.Key)
	switch op.Kind {
	case Insert:
		it, added := m.Insert(op.Key, op.Value)
		if added == present {
			return errors.Newf("insert added=%t, but key present=%t", added, present)
		}
		if added {
			c.Inserts++
			oracle.Set(op.Key, op.Value)
			want = op.Value
		} else {
			c.Duplicates++
		}
		if it.Key() != op.Key || it.Value() != want {
			return errors.Newf("insert returned entry %d=%d, want %d=%d", it.Key(), it.Value(), op.Key, want)
		}

	case Erase:
		it := m.Find(op.Key)
		if it.AtEnd() == present {
			return errors.Newf("find at end=%t, but key present=%t", it.AtEnd(), present)
		}
		if !present {
			c.Misses++
			if err := m.Erase(it); !errors.Is(err, avlmap.ErrInvalidIterator) {
				return errors.Newf("erase of end iterator returned %v", err)
			}
			return nil
		}
		if err := m.Erase(it); err != nil {
			return err
		}
		oracle.Delete(op.Key)
		c.Erases++

	case Index:
		p := m.Index(op.Key)
		if *p != want {
			return errors.Newf("index value %d, want %d", *p, want)
		}
		*p = op.Value
		oracle.Set(op.Key, op.Value)
		c.Indexes++

	case Find:
		v, err := m.At(op.Key)
		switch {
		case present && err != nil:
			return err
		case present && *v != want:
			return errors.Newf("at value %d, want %d", *v, want)
		case !present && !errors.Is(err, avlmap.ErrNotFound):
			return errors.Newf("at of missing key returned %v", err)
		}
		c.Finds++

	default:
		return errors.Newf("unknown op kind %v", op.Kind)
	}
	if m.Len() != oracle.Len() {
		return errors.Newf("len %d, oracle has %d", m.Len(), oracle.Len())
	}
	return nil
}

// check validates m and compares it, in both directions, with oracle.
func check(m *avlmap.Map[int, int], oracle *btree.Map[int, int]) error {
	if err := m.Validate(); err != nil {
		return err
	}
	var keys, vals []int
	oracle.Scan(func(k, v int) bool {
		keys = append(keys, k)
		vals = append(vals, v)
		return true
	})
	i := 0
	for k, v := range m.All() {
		if i >= len(keys) || k != keys[i] || v != vals[i] {
			return errors.Newf("forward entry %d is %d=%d, oracle disagrees", i, k, v)
		}
		i++
	}
	if i != len(keys) {
		return errors.Newf("forward walk saw %d entries, oracle has %d", i, len(keys))
	}
	it := m.End()
	for i := len(keys) - 1; i >= 0; i-- {
		if err := it.Prev(); err != nil {
			return errors.Wrapf(err, "backward step to entry %d", i)
		}
		if it.Key() != keys[i] {
			return errors.Newf("backward entry %d is %d, want %d", i, it.Key(), keys[i])
		}
	}
	if err := it.Prev(); !errors.Is(err, avlmap.ErrInvalidIterator) {
		return errors.Newf("step before the first entry returned %v", err)
	}
	return nil
}
