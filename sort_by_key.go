// Copyright (C) 2024 tieredsort authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package tieredsort

import (
	"github.com/sneller-labs/tieredsort/internal/cmpsort"
	"github.com/sneller-labs/tieredsort/internal/countsort"
	"github.com/sneller-labs/tieredsort/internal/detect"
)

// SortByKey stably sorts items in place into non-decreasing order of
// key(item), preserving the relative order of items with equal keys.
// key is called once per item, up front, to extract the keys used for
// detection and for counting-sort placement; the comparison-sort path
// (short inputs, keys that look already sorted, sparse key ranges)
// calls key again inside every comparison. key must be a pure function
// of its argument for the result to be well-defined.
//
// It allocates a scratch slice of len(items) and a parallel slice of
// len(items) keys; use SortByKeyBuffer to supply the item scratch
// space and avoid that half of the allocation.
func SortByKey[T any, K Key](items []T, key func(T) K) {
	if len(items) <= 1 {
		return
	}
	SortByKeyBuffer(items, make([]T, len(items)), key)
}

// SortByKeyBuffer is SortByKey using buffer as scratch space instead
// of allocating one. buffer must not alias items and must have length
// at least len(items).
func SortByKeyBuffer[T any, K Key](items, buffer []T, key func(T) K) {
	n := len(items)
	if n <= 1 {
		return
	}
	if len(buffer) < n {
		panic("tieredsort: buffer shorter than input")
	}
	if n > 0 && len(buffer) > 0 && &items[0] == &buffer[0] {
		panic("tieredsort: buffer must not alias input")
	}

	keys := make([]K, n)
	for i, it := range items {
		keys[i] = key(it)
	}

	if n < smallArrayThreshold || detect.Sorted(keys) {
		cmpsort.SortObjectsStableByKey(items, key)
		return
	}

	if lo, hi, ok := denseRangeKeys(keys); ok {
		countsort.SortObjectsStable(items, buffer, keys, lo, hi)
		return
	}

	cmpsort.SortObjectsStableByKey(items, key)
}

// denseRangeKeys reifies K via a type switch and calls the one generic
// dense-range detector instantiated at the concrete key type.
func denseRangeKeys[K Key](keys []K) (lo, hi K, ok bool) {
	switch v := any(keys).(type) {
	case []int32:
		mn, mx, k := detect.Dense32(v)
		return any(mn).(K), any(mx).(K), k
	case []uint32:
		mn, mx, k := detect.Dense32(v)
		return any(mn).(K), any(mx).(K), k
	default:
		return lo, hi, false
	}
}
