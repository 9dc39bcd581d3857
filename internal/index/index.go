// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package index provides ordered sets of matrix row and column keys.
package index

import (
	"strconv"

	"github.com/biogo/store/llrb"
)

// ByConditionReplicate is a compare function ordering by condition
// name and then by replicate.
func ByConditionReplicate(xCond, xRep, yCond, yRep string) int {
	if xCond == yCond && xRep == yRep {
		return 0
	}

	// Group replicates of the same condition.
	switch {
	case xCond < yCond:
		return -1
	case xCond > yCond:
		return 1
	}

	return CompareReplicate(xRep, yRep)
}

// CompareReplicate is a compare function for replicate labels. Labels
// that are integers are ordered numerically and sort before labels that
// are not, which are ordered lexically.
func CompareReplicate(x, y string) int {
	if x == y {
		return 0
	}

	nx, errx := strconv.Atoi(x)
	ny, erry := strconv.Atoi(y)
	switch {
	case errx == nil && erry != nil:
		return -1
	case errx != nil && erry == nil:
		return 1
	case errx == nil && erry == nil:
		switch {
		case nx < ny:
			return -1
		case nx > ny:
			return 1
		}
	}

	// Ensure key uniqueness for numerically
	// equal labels such as "1" and "01".
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	panic("unreachable")
}

// String is a llrb.Comparable string ordered lexically.
type String string

// Compare satisfies the llrb.Comparable interface.
func (s String) Compare(b llrb.Comparable) int {
	t := b.(String)
	switch {
	case s < t:
		return -1
	case s > t:
		return 1
	}
	return 0
}

// Set is an ordered set of keys.
type Set struct {
	tree llrb.Tree
}

// Insert adds k to the set. Inserting a key that is already present
// has no effect.
func (s *Set) Insert(k llrb.Comparable) {
	if s.tree.Get(k) != nil {
		return
	}
	s.tree.Insert(k)
}

// Has returns whether k is in the set.
func (s *Set) Has(k llrb.Comparable) bool {
	return s.tree.Get(k) != nil
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Keys returns the keys of the set in ascending order.
func (s *Set) Keys() []llrb.Comparable {
	keys := make([]llrb.Comparable, 0, s.tree.Len())
	s.tree.Do(func(k llrb.Comparable) (done bool) {
		keys = append(keys, k)
		return false
	})
	return keys
}

// Strings returns the keys of a set of String in ascending order.
func (s *Set) Strings() []string {
	keys := make([]string, 0, s.tree.Len())
	s.tree.Do(func(k llrb.Comparable) (done bool) {
		keys = append(keys, string(k.(String)))
		return false
	})
	return keys
}
