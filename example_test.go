// Copyright 2024 The Go Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap_test

import (
	"errors"
	"fmt"

	"github.com/jba/avlmap"
)

func ExampleMap_All() {
	var m avlmap.Map[int, string]
	m.Insert(2, "two")
	m.Insert(1, "one")
	m.Insert(3, "three")

	for k, v := range m.All() {
		fmt.Println(k, v)
	}

	// Output:
	// 1 one
	// 2 two
	// 3 three
}

func ExampleMap_Begin() {
	var m avlmap.Map[string, int]
	m.Insert("b", 2)
	m.Insert("a", 1)
	m.Insert("c", 3)

	for it := m.Begin(); !it.AtEnd(); it.Next() {
		fmt.Println(it.Key(), it.Value())
	}

	// Output:
	// a 1
	// b 2
	// c 3
}

func ExampleMap_Erase() {
	var m avlmap.Map[int, string]
	for i, s := range []string{"zero", "one", "two", "three"} {
		m.Insert(i, s)
	}
	if err := m.Erase(m.Find(1)); err != nil {
		fmt.Println(err)
	}
	err := m.Erase(m.End())
	fmt.Println(errors.Is(err, avlmap.ErrInvalidIterator))

	for k, v := range m.All() {
		fmt.Println(k, v)
	}

	// Output:
	// true
	// 0 zero
	// 2 two
	// 3 three
}

func ExampleMap_Index() {
	var counts avlmap.Map[string, int]
	for _, w := range []string{"b", "a", "b", "c", "b"} {
		*counts.Index(w)++
	}
	for k, v := range counts.All() {
		fmt.Println(k, v)
	}

	// Output:
	// a 1
	// b 3
	// c 1
}

func ExampleNewMapFunc() {
	m := avlmap.NewMapFunc[int, string](func(a, b int) bool { return a > b })
	m.Insert(1, "one")
	m.Insert(3, "three")
	m.Insert(2, "two")

	for k, v := range m.All() {
		fmt.Println(k, v)
	}

	// Output:
	// 3 three
	// 2 two
	// 1 one
}
