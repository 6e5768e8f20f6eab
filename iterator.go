// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

import "github.com/cockroachdb/errors"

// A cursor is a position in a map: a node and the map that owns it.
// It holds the traversal logic shared by Iterator and ConstIterator.
type cursor[K, V any] struct {
	n *node[K, V]
	t *tree[K, V]
}

// check reports whether c refers to a node still in its map.
// The sentinel counts as in the map.
func (c *cursor[K, V]) check(op string) error {
	if c.n == nil || c.t == nil {
		return errors.Wrapf(ErrInvalidIterator, "%s: zero iterator", op)
	}
	if c.n.erased() {
		return errors.Wrapf(ErrInvalidIterator, "%s: element was erased", op)
	}
	return nil
}

// Next advances to the following element.
// It fails with ErrInvalidIterator at the end position.
func (c *cursor[K, V]) Next() error {
	if err := c.check("next"); err != nil {
		return err
	}
	if c.n == c.t.end {
		return errors.Wrap(ErrInvalidIterator, "next: past the end")
	}
	c.n = c.n.next
	return nil
}

// Prev moves back to the preceding element.
// It fails with ErrInvalidIterator at the first element,
// and at the end position of an empty map.
func (c *cursor[K, V]) Prev() error {
	if err := c.check("prev"); err != nil {
		return err
	}
	p := c.n.prev
	if p == nil || p == c.t.end {
		return errors.Wrap(ErrInvalidIterator, "prev: before the first element")
	}
	c.n = p
	return nil
}

// AtEnd reports whether the iterator is at the past-the-end position.
func (c cursor[K, V]) AtEnd() bool {
	return c.t != nil && c.n == c.t.end
}

// Equal reports whether c and o refer to the same element of the same map.
func (c cursor[K, V]) Equal(o ConstIterator[K, V]) bool {
	return c.n == o.n
}

func (c cursor[K, V]) entry() *Entry[K, V] {
	if c.n == nil || c.n.entry == nil {
		panic("avlmap: dereference of end or zero iterator")
	}
	return c.n.entry
}

// Key returns the key of the element.
// It panics at the end position.
func (c cursor[K, V]) Key() K { return c.entry().key }

// Value returns the value of the element.
// It panics at the end position.
func (c cursor[K, V]) Value() V { return c.entry().Value }

// An Iterator is a position in a Map or MapFunc through which
// the element's value can be changed.
// It stays valid until its element is erased.
type Iterator[K, V any] struct {
	cursor[K, V]
}

// Entry returns the element the iterator refers to.
// The entry's Value may be modified in place.
func (it Iterator[K, V]) Entry() *Entry[K, V] { return it.entry() }

// SetValue replaces the value of the element.
func (it Iterator[K, V]) SetValue(v V) { it.entry().Value = v }

// Const returns a read-only iterator at the same position.
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{it.cursor}
}

// A ConstIterator is a read-only position in a Map or MapFunc.
type ConstIterator[K, V any] struct {
	cursor[K, V]
}

func (t *tree[K, V]) iter(x *node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{cursor[K, V]{n: x, t: t}}
}

func (t *tree[K, V]) beginIter() Iterator[K, V] { return t.iter(t.begin()) }

func (t *tree[K, V]) endIter() Iterator[K, V] { return t.iter(t.end) }
