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

package countsort

import "github.com/sneller-labs/tieredsort/internal/numeric"

// SortObjectsStable counting-sorts items in place by their
// already-extracted keys (keys[i] must be the key of items[i]) given
// the exact inclusive key bounds [min, max], writing through scratch
// (length at least len(items)). It moves the caller's own records only
// (it never fabricates or duplicates one) and preserves the relative
// order of items sharing a key.
func SortObjectsStable[T any, K numeric.Key](items, scratch []T, keys []K, min, max K) {
	n := len(items)
	if n == 0 {
		return
	}
	base := uint64(min)
	rng := int(uint64(max)-base) + 1
	count := make([]int, rng)
	for _, k := range keys {
		count[uint64(k)-base]++
	}
	for i := 1; i < rng; i++ {
		count[i] += count[i-1]
	}
	for i := n - 1; i >= 0; i-- {
		idx := uint64(keys[i]) - base
		count[idx]--
		scratch[count[idx]] = items[i]
	}
	copy(items, scratch[:n])
}
