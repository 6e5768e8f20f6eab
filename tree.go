// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

// The implementation is an AVL tree whose nodes are also threaded
// onto a doubly linked list in key order. See:
// https://en.wikipedia.org/wiki/AVL_tree
// G. M. Adelson-Velsky and E. M. Landis, "An algorithm for the
// organization of information", 1962.

// A tree is the state shared by Map and MapFunc.
type tree[K, V any] struct {
	root  *node[K, V]
	end   *node[K, V] // sentinel; end.prev is the maximum, or end itself when empty
	first *node[K, V] // minimum, nil when empty
	size  int
	less  func(a, b K) bool
}

// init prepares t for use. It is a no-op if t is already initialized.
func (t *tree[K, V]) init(less func(a, b K) bool) {
	if t.end != nil {
		return
	}
	t.less = less
	t.end = &node[K, V]{height: -1}
	t.end.prev = t.end
}

// equiv reports whether a and b are the same key under t.less.
// It is the only way the tree decides key equality.
func (t *tree[K, V]) equiv(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}

// search returns the node whose key is equivalent to key, or nil.
func (t *tree[K, V]) search(key K) *node[K, V] {
	x := t.root
	for x != nil && !t.equiv(key, x.key()) {
		if t.less(key, x.key()) {
			x = x.left
		} else {
			x = x.right
		}
	}
	return x
}

// upper returns the first node whose key is greater than key,
// or the sentinel if there is none.
func (t *tree[K, V]) upper(key K) *node[K, V] {
	succ := t.end
	for x := t.root; x != nil; {
		if t.less(key, x.key()) {
			succ, x = x, x.left
		} else {
			x = x.right
		}
	}
	return succ
}

// lower returns the last node whose key is less than key, or nil.
func (t *tree[K, V]) lower(key K) *node[K, V] {
	var pred *node[K, V]
	for x := t.root; x != nil; {
		if t.less(x.key(), key) {
			pred, x = x, x.right
		} else {
			x = x.left
		}
	}
	return pred
}

// insert attaches the new leaf x below *pos and rebalances on the way up.
// The caller must already know that x's key is not in the tree.
// succ is the lowest ancestor at which the descent went left;
// x is linked into the list just before it.
func (t *tree[K, V]) insert(pos **node[K, V], x, succ *node[K, V]) {
	n := *pos
	if n == nil {
		*pos = x
		t.link(x, succ)
		return
	}
	if t.less(x.key(), n.key()) {
		t.insert(&n.left, x, n)
	} else {
		t.insert(&n.right, x, succ)
	}
	t.maintain(pos, x.key())
}

// maintain restores the balance of *pos after key was inserted below it.
// The rotation is chosen by where key went rather than by the
// grandchild heights, which can tie while the path is being rebalanced.
func (t *tree[K, V]) maintain(pos **node[K, V], key K) {
	x := *pos
	x.setHeight()
	switch x.balance() {
	case 2:
		if t.less(key, x.left.key()) {
			rotateLL(pos)
		} else {
			rotateLR(pos)
		}
	case -2:
		if t.less(x.right.key(), key) {
			rotateRR(pos)
		} else {
			rotateRL(pos)
		}
	}
}

// remove unhooks target from the subtree at *pos and rebalances
// every ancestor. target's list links are not changed.
func (t *tree[K, V]) remove(pos **node[K, V], target *node[K, V]) {
	x := *pos
	switch {
	case x == nil:
		panic("avlmap: removing a node that is not in the tree")
	case x == target:
		t.unhook(pos)
		return
	case t.less(target.key(), x.key()):
		t.remove(&x.left, target)
	default:
		t.remove(&x.right, target)
	}
	t.adjust(pos)
}

// unhook removes *pos from the tree.
// With two children, its successor is detached from the right subtree
// and takes over its position, so every entry stays with its node.
func (t *tree[K, V]) unhook(pos **node[K, V]) {
	x := *pos
	switch {
	case x.left == nil:
		*pos = x.right
	case x.right == nil:
		*pos = x.left
	default:
		s := x.next
		t.remove(&x.right, s)
		s.left, s.right = x.left, x.right
		*pos = s
		t.adjust(pos)
	}
}

// adjust restores the balance of *pos after a removal below it.
// Unlike maintain, it looks at the heavy child's own balance:
// a removal can leave that child perfectly balanced, which needs
// a single rotation.
func (t *tree[K, V]) adjust(pos **node[K, V]) {
	x := *pos
	x.setHeight()
	switch x.balance() {
	case 2:
		if x.left.balance() >= 0 {
			rotateLL(pos)
		} else {
			rotateLR(pos)
		}
	case -2:
		if x.right.balance() <= 0 {
			rotateRR(pos)
		} else {
			rotateRL(pos)
		}
	}
}

// rotateLL rotates the subtree at *pos right,
// turning (x (p a b) c) into (p a (x b c)).
func rotateLL[K, V any](pos **node[K, V]) {
	x := *pos
	p := x.left
	x.left = p.right
	p.right = x
	*pos = p
	x.setHeight()
	p.setHeight()
}

// rotateRR rotates the subtree at *pos left,
// turning (x a (p b c)) into (p (x a b) c).
func rotateRR[K, V any](pos **node[K, V]) {
	x := *pos
	p := x.right
	x.right = p.left
	p.left = x
	*pos = p
	x.setHeight()
	p.setHeight()
}

// rotateLR turns (x (p a (q b c)) d) into (q (p a b) (x c d)).
func rotateLR[K, V any](pos **node[K, V]) {
	x := *pos
	p := x.left
	q := p.right
	p.right = q.left
	x.left = q.right
	q.left = p
	q.right = x
	*pos = q
	p.setHeight()
	x.setHeight()
	q.setHeight()
}

// rotateRL turns (x a (p (q b c) d)) into (q (x a b) (p c d)).
func rotateRL[K, V any](pos **node[K, V]) {
	x := *pos
	p := x.right
	q := p.left
	x.right = q.left
	p.left = q.right
	q.left = x
	q.right = p
	*pos = q
	x.setHeight()
	p.setHeight()
	q.setHeight()
}
