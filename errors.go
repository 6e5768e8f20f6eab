// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

import "github.com/cockroachdb/errors"

var (
	// ErrNotFound is returned by At when the key has no entry.
	ErrNotFound = errors.New("avlmap: key not found")

	// ErrInvalidIterator is returned when an iterator is used outside
	// its valid range: it belongs to another map, it is past the end,
	// it would move before the first element, or its element was erased.
	ErrInvalidIterator = errors.New("avlmap: invalid iterator")
)
