// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package index

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/reifydb/reifydb/types"
)

func TestTreeAscendIsSortedForAnyInsertOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.Int32(), 0, 64).Draw(t, "values")
		l := NewLayout([]types.Type{types.Int4}, []Direction{Asc})
		tree := NewTree(8)
		distinct := make(map[int32]struct{})
		for _, v := range values {
			k := New(l)
			l.SetInt4(k, 0, v)
			tree.Insert(k)
			distinct[v] = struct{}{}
		}
		require.Equal(t, len(distinct), tree.Len())

		var prev *EncodedIndexKey
		tree.Ascend(func(k *EncodedIndexKey) bool {
			if prev != nil {
				require.LessOrEqual(t, Compare(prev, k), 0)
			}
			prev = k
			return true
		})
	})
}
