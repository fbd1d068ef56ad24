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

// Package countsort implements counting sort over the dense-range
// fast path, both directly on integer element slices and, via
// objects.go, keyed indirectly over arbitrary records.
package countsort

import "github.com/sneller-labs/tieredsort/internal/numeric"

// SortUnstable sorts s in place given the exact inclusive value bounds
// [min, max]. It does not preserve the relative order of equal
// elements. Converting a signed or unsigned integer type parameter to
// uint64 is a pure bit reinterpretation in Go, so uint64(x)-uint64(min)
// gives the correct small bucket index for all four integer element
// types without a per-type branch.
func SortUnstable[T numeric.Integer](s []T, min, max T) {
	n := len(s)
	if n == 0 {
		return
	}
	base := uint64(min)
	rng := int(uint64(max)-base) + 1
	count := make([]int, rng)
	for _, v := range s {
		count[uint64(v)-base]++
	}
	idx := 0
	for i := 0; i < rng; i++ {
		v := T(base + uint64(i))
		for c := count[i]; c > 0; c-- {
			s[idx] = v
			idx++
		}
	}
}

// SortStable sorts s in place given the exact inclusive value bounds
// [min, max], writing through scratch (which must have length at
// least len(s)) and preserving the relative order of equal elements.
// The backward traversal over exclusive-end prefix-sum positions is
// what makes the placement stable.
func SortStable[T numeric.Integer](s, scratch []T, min, max T) {
	n := len(s)
	if n == 0 {
		return
	}
	base := uint64(min)
	rng := int(uint64(max)-base) + 1
	count := make([]int, rng)
	for _, v := range s {
		count[uint64(v)-base]++
	}
	for i := 1; i < rng; i++ {
		count[i] += count[i-1]
	}
	for i := n - 1; i >= 0; i-- {
		idx := uint64(s[i]) - base
		count[idx]--
		scratch[count[idx]] = s[i]
	}
	copy(s, scratch[:n])
}
