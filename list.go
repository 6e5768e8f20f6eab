// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

// The list overlay threads every node in key order:
// t.first -> ... -> last -> t.end, with prev links in reverse
// and t.first.prev == nil.

// link splices the new node x into the list just before succ,
// or before the sentinel if succ is nil.
func (t *tree[K, V]) link(x, succ *node[K, V]) {
	if succ == nil {
		succ = t.end
	}
	prev := succ.prev
	if prev == t.end {
		// The map was empty.
		prev = nil
	}
	x.next = succ
	x.prev = prev
	if prev == nil {
		t.first = x
	} else {
		prev.next = x
	}
	succ.prev = x
}

// unlink splices x out of the list.
func (t *tree[K, V]) unlink(x *node[K, V]) {
	next, prev := x.next, x.prev
	if prev == nil {
		t.first = next
	} else {
		prev.next = next
	}
	next.prev = prev
	if next == t.end && prev == nil {
		// x was the only element.
		t.first = nil
		t.end.prev = t.end
	}
}

// relink rebuilds every list link, the minimum and the sentinel
// from the tree shape with one in-order walk.
func (t *tree[K, V]) relink() {
	var last *node[K, V]
	t.first = nil
	var walk func(*node[K, V])
	walk = func(x *node[K, V]) {
		if x == nil {
			return
		}
		walk(x.left)
		x.prev = last
		if last == nil {
			t.first = x
		} else {
			last.next = x
		}
		last = x
		walk(x.right)
	}
	walk(t.root)
	if last == nil {
		t.end.prev = t.end
		return
	}
	last.next = t.end
	t.end.prev = last
}

// begin returns the first node, or the sentinel if t is empty.
func (t *tree[K, V]) begin() *node[K, V] {
	if t.first == nil {
		return t.end
	}
	return t.first
}

// last returns the maximum node, or nil if t is empty.
func (t *tree[K, V]) last() *node[K, V] {
	if t.end.prev == t.end {
		return nil
	}
	return t.end.prev
}

// successor returns the node after x, even if x has been erased
// since the caller reached it.
func (t *tree[K, V]) successor(x *node[K, V]) *node[K, V] {
	if x.erased() {
		return t.upper(x.key())
	}
	return x.next
}

// predecessor returns the node before x, or nil,
// even if x has been erased since the caller reached it.
func (t *tree[K, V]) predecessor(x *node[K, V]) *node[K, V] {
	if x.erased() {
		return t.lower(x.key())
	}
	return x.prev
}
