// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package workload

import (
	"time"

	"github.com/tidwall/btree"

	"github.com/jba/avlmap"
)

// A Timing is how long one implementation took to apply a workload.
type Timing struct {
	Name     string
	Elapsed  time.Duration
	FinalLen int
}

// PerOp returns the mean time per operation.
func (t Timing) PerOp(ops int) time.Duration {
	if ops == 0 {
		return 0
	}
	return t.Elapsed / time.Duration(ops)
}

// Compare applies ops, without checking, to an avlmap.Map and to a
// B-tree of the given degree, and reports how long each took.
func Compare(ops []Op, degree int) []Timing {
	return []Timing{timeAVL(ops), timeBTree(ops, degree)}
}

func timeAVL(ops []Op) Timing {
	var m avlmap.Map[int, int]
	start := time.Now()
	for _, op := range ops {
		switch op.Kind {
		case Insert:
			m.Insert(op.Key, op.Value)
		case Erase:
			m.Delete(op.Key)
		case Index:
			*m.Index(op.Key) = op.Value
		case Find:
			m.Get(op.Key)
		}
	}
	return Timing{Name: "avlmap", Elapsed: time.Since(start), FinalLen: m.Len()}
}

func timeBTree(ops []Op, degree int) Timing {
	m := btree.NewMap[int, int](degree)
	start := time.Now()
	for _, op := range ops {
		switch op.Kind {
		case Insert:
			if _, ok := m.Get(op.Key); !ok {
				m.Set(op.Key, op.Value)
			}
		case Erase:
			m.Delete(op.Key)
		case Index:
			m.Set(op.Key, op.Value)
		case Find:
			m.Get(op.Key)
		}
	}
	return Timing{Name: "tidwall/btree", Elapsed: time.Since(start), FinalLen: m.Len()}
}
