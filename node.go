// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

// An Entry is a key-value pair stored in a map.
// The key cannot change once the entry is in a map; the value can.
type Entry[K, V any] struct {
	key   K
	Value V
}

// Key returns the entry's key.
func (e *Entry[K, V]) Key() K { return e.key }

// A node is both a node in the AVL tree and an element of the
// doubly linked list that threads the tree in key order.
//
// left and right are the tree edges. next and prev are the list links:
// the last node's next is the sentinel, the first node's prev is nil,
// and the sentinel's prev is the last node.
type node[K, V any] struct {
	entry       *Entry[K, V] // nil for the sentinel
	left, right *node[K, V]
	next, prev  *node[K, V]
	height      int
}

// erasedHeight marks a node that has been removed from its map.
// Live nodes have height >= 0, and the sentinel has height -1.
const erasedHeight = -2

func newNode[K, V any](key K, val V) *node[K, V] {
	return &node[K, V]{entry: &Entry[K, V]{key: key, Value: val}}
}

func (x *node[K, V]) key() K { return x.entry.key }

// safeHeight returns the height of x, or -1 if x is nil.
func (x *node[K, V]) safeHeight() int {
	if x == nil {
		return -1
	}
	return x.height
}

func (x *node[K, V]) setHeight() {
	x.height = 1 + max(x.left.safeHeight(), x.right.safeHeight())
}

// balance returns height(left) - height(right).
func (x *node[K, V]) balance() int {
	return x.left.safeHeight() - x.right.safeHeight()
}

func (x *node[K, V]) erased() bool { return x.height == erasedHeight }

// markErased detaches x from its tree and list so that
// iterators still holding x notice it is gone.
func (x *node[K, V]) markErased() {
	x.left, x.right = nil, nil
	x.next, x.prev = nil, nil
	x.height = erasedHeight
}

// markAllErased marks every node in x's subtree, post-order.
func (x *node[K, V]) markAllErased() {
	if x == nil {
		return
	}
	x.left.markAllErased()
	x.right.markAllErased()
	x.markErased()
}

// cloner is implemented by values that copy themselves deeply,
// such as *Map and *MapFunc, so that maps of maps clone fully.
type cloner[V any] interface {
	Clone() V
}

// clone returns a deep copy of x's subtree.
// Heights are copied; list links are left for the caller to rebuild.
func (x *node[K, V]) clone() *node[K, V] {
	if x == nil {
		return nil
	}
	e := *x.entry
	if c, ok := any(e.Value).(cloner[V]); ok {
		e.Value = c.Clone()
	}
	return &node[K, V]{
		entry:  &e,
		left:   x.left.clone(),
		right:  x.right.clone(),
		height: x.height,
	}
}
