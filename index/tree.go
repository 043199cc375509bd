// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package index

import "github.com/google/btree"

// Tree is an in-memory ordered index over EncodedIndexKey, keyed by the
// same total byte order Compare defines (spec.md §4.4 "Index keys order
// byte-for-byte the same as the typed comparison they encode"). It backs a
// storage-side Source implementation's scan-by-range without needing a
// persistent B-tree engine.
type Tree struct {
	bt *btree.BTreeG[*EncodedIndexKey]
}

// NewTree builds an empty Tree with the given btree degree (branching
// factor); 32 is a reasonable default for an in-memory index of this size.
func NewTree(degree int) *Tree {
	return &Tree{bt: btree.NewG(degree, func(a, b *EncodedIndexKey) bool {
		return Compare(a, b) < 0
	})}
}

func (t *Tree) Insert(k *EncodedIndexKey) { t.bt.ReplaceOrInsert(k) }

func (t *Tree) Delete(k *EncodedIndexKey) bool {
	_, ok := t.bt.Delete(k)
	return ok
}

func (t *Tree) Len() int { return t.bt.Len() }

// Range calls fn for every key in [lo, hi) in ascending order, stopping
// early if fn returns false.
func (t *Tree) Range(lo, hi *EncodedIndexKey, fn func(*EncodedIndexKey) bool) {
	t.bt.AscendRange(lo, hi, fn)
}

func (t *Tree) Ascend(fn func(*EncodedIndexKey) bool) { t.bt.Ascend(fn) }

func (t *Tree) Descend(fn func(*EncodedIndexKey) bool) { t.bt.Descend(fn) }
