// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package avlmap implements in-memory ordered maps with
// bidirectional iterators.
// [Map][K, V] is suitable for ordered types K,
// while [MapFunc][K, V] supports arbitrary keys and a less function.
//
// Lookup, insertion and erasure take O(log n) time.
// Every element is also linked to its neighbors in key order,
// so stepping an iterator takes O(1) time.
//
// An iterator stays valid until the element it refers to is erased,
// whatever happens to other elements. Using an iterator whose element
// was erased reports [ErrInvalidIterator].
//
// Maps are not safe for concurrent use.
// Copying a Map or MapFunc struct shares its nodes; use Clone or Assign.
// To nest maps, use *Map or *MapFunc as the value type so that
// Clone copies the inner maps too.
package avlmap

import (
	"cmp"
	"iter"

	"github.com/cockroachdb/errors"
)

// A Map is a map[K]V ordered according to K's standard Go ordering.
// The zero value of a Map is an empty Map ready to use.
type Map[K cmp.Ordered, V any] struct {
	tr tree[K, V]
}

// A MapFunc is a map[K]V ordered according to an arbitrary less function.
// The zero value of a MapFunc is not meaningful since it has no less function.
// Use [NewMapFunc] to create a [MapFunc].
type MapFunc[K, V any] struct {
	tr tree[K, V]
}

// New returns a new, empty Map.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return new(Map[K, V])
}

// NewMapFunc returns a new MapFunc[K, V] ordered according to less.
// less must be a strict weak ordering. Two keys are the same key
// when neither is less than the other.
func NewMapFunc[K, V any](less func(a, b K) bool) *MapFunc[K, V] {
	m := new(MapFunc[K, V])
	m.tr.init(less)
	return m
}

func (m *Map[K, V]) t() *tree[K, V] {
	m.tr.init(cmp.Less[K])
	return &m.tr
}

func (m *MapFunc[K, V]) t() *tree[K, V] {
	if m.tr.end == nil {
		panic("avlmap: MapFunc not created by NewMapFunc")
	}
	return &m.tr
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int { return m.tr.size }

// Len returns the number of entries in m.
func (m *MapFunc[K, V]) Len() int { return m.tr.size }

// Empty reports whether m has no entries.
func (m *Map[K, V]) Empty() bool { return m.tr.size == 0 }

// Empty reports whether m has no entries.
func (m *MapFunc[K, V]) Empty() bool { return m.tr.size == 0 }

// At returns a pointer to the value of m[key].
// If key is not in m, it returns ErrNotFound and m is unchanged.
// The pointer stays valid until the entry is erased.
func (m *Map[K, V]) At(key K) (*V, error) { return m.t().at(key) }

// At returns a pointer to the value of m[key].
// If key is not in m, it returns ErrNotFound and m is unchanged.
// The pointer stays valid until the entry is erased.
func (m *MapFunc[K, V]) At(key K) (*V, error) { return m.t().at(key) }

// Index returns a pointer to the value of m[key].
// If key is not in m, Index first adds it with the zero value,
// so calling Index on a missing key changes m.
func (m *Map[K, V]) Index(key K) *V { return m.t().index(key) }

// Index returns a pointer to the value of m[key].
// If key is not in m, Index first adds it with the zero value,
// so calling Index on a missing key changes m.
func (m *MapFunc[K, V]) Index(key K) *V { return m.t().index(key) }

// Get returns the value of m[key] and reports whether it exists.
func (m *Map[K, V]) Get(key K) (V, bool) { return m.t().get(key) }

// Get returns the value of m[key] and reports whether it exists.
func (m *MapFunc[K, V]) Get(key K) (V, bool) { return m.t().get(key) }

// Insert adds key with value val to m.
// If key is already present, Insert leaves its value alone and returns
// an iterator to the existing entry and false.
// Otherwise it returns an iterator to the new entry and true.
func (m *Map[K, V]) Insert(key K, val V) (Iterator[K, V], bool) {
	return m.t().put(key, val)
}

// Insert adds key with value val to m.
// If key is already present, Insert leaves its value alone and returns
// an iterator to the existing entry and false.
// Otherwise it returns an iterator to the new entry and true.
func (m *MapFunc[K, V]) Insert(key K, val V) (Iterator[K, V], bool) {
	return m.t().put(key, val)
}

// Set sets m[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (m *Map[K, V]) Set(key K, val V) (old V, added bool) { return m.t().set(key, val) }

// Set sets m[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (m *MapFunc[K, V]) Set(key K, val V) (old V, added bool) { return m.t().set(key, val) }

// Erase removes the entry at it from m.
// It returns ErrInvalidIterator, leaving m unchanged, if it belongs to
// another map, is at the end position, or its entry was already erased.
// Afterwards it, and every copy of it, is invalid.
func (m *Map[K, V]) Erase(it Iterator[K, V]) error { return m.t().erase(it.cursor) }

// Erase removes the entry at it from m.
// It returns ErrInvalidIterator, leaving m unchanged, if it belongs to
// another map, is at the end position, or its entry was already erased.
// Afterwards it, and every copy of it, is invalid.
func (m *MapFunc[K, V]) Erase(it Iterator[K, V]) error { return m.t().erase(it.cursor) }

// Delete deletes m[key] if it exists and reports whether it did.
func (m *Map[K, V]) Delete(key K) bool { return m.t().delete(key) }

// Delete deletes m[key] if it exists and reports whether it did.
func (m *MapFunc[K, V]) Delete(key K) bool { return m.t().delete(key) }

// Find returns an iterator to m[key], or End() if key is not in m.
func (m *Map[K, V]) Find(key K) Iterator[K, V] { return m.t().find(key) }

// Find returns an iterator to m[key], or End() if key is not in m.
func (m *MapFunc[K, V]) Find(key K) Iterator[K, V] { return m.t().find(key) }

// FindConst is like Find but returns a read-only iterator.
func (m *Map[K, V]) FindConst(key K) ConstIterator[K, V] { return m.t().find(key).Const() }

// FindConst is like Find but returns a read-only iterator.
func (m *MapFunc[K, V]) FindConst(key K) ConstIterator[K, V] { return m.t().find(key).Const() }

// Count returns the number of entries with key: 0 or 1.
func (m *Map[K, V]) Count(key K) int { return m.t().count(key) }

// Count returns the number of entries with key: 0 or 1.
func (m *MapFunc[K, V]) Count(key K) int { return m.t().count(key) }

// Begin returns an iterator to the entry with the smallest key,
// or End() if m is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] { return m.t().beginIter() }

// Begin returns an iterator to the entry with the smallest key,
// or End() if m is empty.
func (m *MapFunc[K, V]) Begin() Iterator[K, V] { return m.t().beginIter() }

// End returns the past-the-end iterator.
func (m *Map[K, V]) End() Iterator[K, V] { return m.t().endIter() }

// End returns the past-the-end iterator.
func (m *MapFunc[K, V]) End() Iterator[K, V] { return m.t().endIter() }

// CBegin is like Begin but returns a read-only iterator.
func (m *Map[K, V]) CBegin() ConstIterator[K, V] { return m.t().beginIter().Const() }

// CBegin is like Begin but returns a read-only iterator.
func (m *MapFunc[K, V]) CBegin() ConstIterator[K, V] { return m.t().beginIter().Const() }

// CEnd is like End but returns a read-only iterator.
func (m *Map[K, V]) CEnd() ConstIterator[K, V] { return m.t().endIter().Const() }

// CEnd is like End but returns a read-only iterator.
func (m *MapFunc[K, V]) CEnd() ConstIterator[K, V] { return m.t().endIter().Const() }

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *Map[K, V]) Min() (K, bool) { return m.t().min() }

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *MapFunc[K, V]) Min() (K, bool) { return m.t().min() }

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *Map[K, V]) Max() (K, bool) { return m.t().max() }

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *MapFunc[K, V]) Max() (K, bool) { return m.t().max() }

// All returns an iterator over the map m from smallest to largest key.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.t().all() }

// All returns an iterator over the map m from smallest to largest key.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *MapFunc[K, V]) All() iter.Seq2[K, V] { return m.t().all() }

// Backward returns an iterator over the map m from largest to smallest key.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] { return m.t().backward() }

// Backward returns an iterator over the map m from largest to smallest key.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *MapFunc[K, V]) Backward() iter.Seq2[K, V] { return m.t().backward() }

// Clear deletes every entry in m.
// Iterators to those entries become invalid; End() stays valid.
func (m *Map[K, V]) Clear() { m.t().clear() }

// Clear deletes every entry in m.
// Iterators to those entries become invalid; End() stays valid.
func (m *MapFunc[K, V]) Clear() { m.t().clear() }

// Clone returns a deep copy of m.
// Values implementing Clone() V, such as *Map, are cloned as well.
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m == nil {
		return nil
	}
	m2 := New[K, V]()
	m.t().copyTo(m2.t())
	return m2
}

// Clone returns a deep copy of m.
// Values implementing Clone() V, such as *MapFunc, are cloned as well.
func (m *MapFunc[K, V]) Clone() *MapFunc[K, V] {
	if m == nil {
		return nil
	}
	m2 := NewMapFunc[K, V](m.tr.less)
	m.t().copyTo(m2.t())
	return m2
}

// Assign replaces the contents of m with a deep copy of src.
// Iterators to m's former entries become invalid.
func (m *Map[K, V]) Assign(src *Map[K, V]) {
	if m == src {
		return
	}
	m.t().clear()
	src.t().copyTo(m.t())
}

// Assign replaces the contents of m with a deep copy of src,
// and adopts src's less function.
// Iterators to m's former entries become invalid.
func (m *MapFunc[K, V]) Assign(src *MapFunc[K, V]) {
	if m == src {
		return
	}
	m.t().clear()
	m.tr.less = src.t().less
	src.t().copyTo(m.t())
}

// Validate checks every structural invariant of m and returns an error
// describing the first violation found. It takes O(n) time.
func (m *Map[K, V]) Validate() error { return m.t().validate() }

// Validate checks every structural invariant of m and returns an error
// describing the first violation found. It takes O(n) time.
func (m *MapFunc[K, V]) Validate() error { return m.t().validate() }

// Depth returns the height of m's tree: -1 if m is empty, 0 for one entry.
func (m *Map[K, V]) Depth() int { return m.tr.root.safeHeight() }

// Depth returns the height of m's tree: -1 if m is empty, 0 for one entry.
func (m *MapFunc[K, V]) Depth() int { return m.tr.root.safeHeight() }

func (t *tree[K, V]) at(key K) (*V, error) {
	x := t.search(key)
	if x == nil {
		return nil, errors.Wrapf(ErrNotFound, "at %v", key)
	}
	return &x.entry.Value, nil
}

func (t *tree[K, V]) index(key K) *V {
	var zero V
	it, _ := t.put(key, zero)
	return &it.n.entry.Value
}

func (t *tree[K, V]) get(key K) (V, bool) {
	if x := t.search(key); x != nil {
		return x.entry.Value, true
	}
	var zero V
	return zero, false
}

// put inserts key if it is missing. It never overwrites.
func (t *tree[K, V]) put(key K, val V) (Iterator[K, V], bool) {
	if x := t.search(key); x != nil {
		return t.iter(x), false
	}
	x := newNode(key, val)
	t.insert(&t.root, x, nil)
	t.size++
	return t.iter(x), true
}

func (t *tree[K, V]) set(key K, val V) (V, bool) {
	it, added := t.put(key, val)
	if added {
		var zero V
		return zero, true
	}
	old := it.n.entry.Value
	it.n.entry.Value = val
	return old, false
}

func (t *tree[K, V]) erase(c cursor[K, V]) error {
	switch {
	case c.t != t:
		return errors.Wrap(ErrInvalidIterator, "erase: iterator belongs to another map")
	case c.n == nil:
		return errors.Wrap(ErrInvalidIterator, "erase: zero iterator")
	case c.n == t.end:
		return errors.Wrap(ErrInvalidIterator, "erase: end iterator")
	case c.n.erased():
		return errors.Wrap(ErrInvalidIterator, "erase: element was already erased")
	}
	t.eraseNode(c.n)
	return nil
}

// eraseNode removes x from the tree, then from the list.
// The tree goes first because a two-child removal reads x.next.
func (t *tree[K, V]) eraseNode(x *node[K, V]) {
	t.remove(&t.root, x)
	t.unlink(x)
	x.markErased()
	t.size--
}

func (t *tree[K, V]) delete(key K) bool {
	x := t.search(key)
	if x == nil {
		return false
	}
	t.eraseNode(x)
	return true
}

func (t *tree[K, V]) find(key K) Iterator[K, V] {
	if x := t.search(key); x != nil {
		return t.iter(x)
	}
	return t.iter(t.end)
}

func (t *tree[K, V]) count(key K) int {
	if t.search(key) == nil {
		return 0
	}
	return 1
}

func (t *tree[K, V]) min() (K, bool) {
	if t.first == nil {
		var zero K
		return zero, false
	}
	return t.first.key(), true
}

func (t *tree[K, V]) max() (K, bool) {
	x := t.last()
	if x == nil {
		var zero K
		return zero, false
	}
	return x.key(), true
}

func (t *tree[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		x := t.begin()
		for x != t.end && yield(x.key(), x.entry.Value) {
			x = t.successor(x)
		}
	}
}

func (t *tree[K, V]) backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		x := t.last()
		for x != nil && yield(x.key(), x.entry.Value) {
			x = t.predecessor(x)
		}
	}
}

// clear empties t. Every former node is marked erased.
func (t *tree[K, V]) clear() {
	t.root.markAllErased()
	t.root = nil
	t.first = nil
	t.end.prev = t.end
	t.size = 0
}

// copyTo makes the empty tree dst a deep copy of t
// by cloning the shape and then rebuilding the list.
func (t *tree[K, V]) copyTo(dst *tree[K, V]) {
	dst.root = t.root.clone()
	dst.size = t.size
	dst.relink()
}
