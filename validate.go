// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

import "github.com/cockroachdb/errors"

// validate checks the tree shape, the cached heights, the AVL balance,
// the key order, the list overlay, the minimum cache and the size.
func (t *tree[K, V]) validate() error {
	var inorder []*node[K, V]
	if _, err := t.checkNode(t.root, nil, nil, &inorder); err != nil {
		return err
	}
	if len(inorder) != t.size {
		return errors.AssertionFailedf("size is %d but the tree has %d nodes", t.size, len(inorder))
	}
	if t.end.entry != nil || t.end.left != nil || t.end.right != nil || t.end.next != nil {
		return errors.AssertionFailedf("sentinel has an entry or links")
	}
	if len(inorder) == 0 {
		if t.first != nil {
			return errors.AssertionFailedf("empty map has a minimum")
		}
		if t.end.prev != t.end {
			return errors.AssertionFailedf("empty map sentinel does not point to itself")
		}
		return nil
	}
	if t.first != inorder[0] {
		return errors.AssertionFailedf("minimum cache is %v, want %v", t.first.key(), inorder[0].key())
	}

	// Walk the list forward and backward and compare with the tree.
	var prev *node[K, V]
	x := t.first
	for i, want := range inorder {
		if x != want {
			return errors.AssertionFailedf("list element %d is not the in-order node %v", i, want.key())
		}
		if x.prev != prev {
			return errors.AssertionFailedf("prev link of %v is wrong", x.key())
		}
		prev, x = x, x.next
	}
	if x != t.end {
		return errors.AssertionFailedf("list does not end at the sentinel after %d nodes", len(inorder))
	}
	if t.end.prev != prev {
		return errors.AssertionFailedf("sentinel prev is not the maximum %v", prev.key())
	}
	return nil
}

// checkNode checks the subtree at x, whose keys must lie strictly between
// lo and hi when those are non-nil, appends its nodes in order,
// and returns its height.
func (t *tree[K, V]) checkNode(x, lo, hi *node[K, V], inorder *[]*node[K, V]) (int, error) {
	if x == nil {
		return -1, nil
	}
	if x.erased() || x.entry == nil {
		return 0, errors.AssertionFailedf("erased node reachable from the root")
	}
	if lo != nil && !t.less(lo.key(), x.key()) {
		return 0, errors.AssertionFailedf("key %v is not greater than %v", x.key(), lo.key())
	}
	if hi != nil && !t.less(x.key(), hi.key()) {
		return 0, errors.AssertionFailedf("key %v is not less than %v", x.key(), hi.key())
	}
	lh, err := t.checkNode(x.left, lo, x, inorder)
	if err != nil {
		return 0, err
	}
	*inorder = append(*inorder, x)
	rh, err := t.checkNode(x.right, x, hi, inorder)
	if err != nil {
		return 0, err
	}
	h := 1 + max(lh, rh)
	if x.height != h {
		return 0, errors.AssertionFailedf("node %v has height %d, want %d", x.key(), x.height, h)
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, errors.AssertionFailedf("node %v has balance %d", x.key(), b)
	}
	return h, nil
}
