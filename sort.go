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

import "github.com/sneller-labs/tieredsort/internal/cmpsort"

// Sort sorts s in place into non-decreasing order under E's natural
// order. It does not preserve the relative order of equal elements; use
// StableSort when that matters. It allocates a single scratch buffer of
// len(s) only if the radix-sort path is chosen; use SortBuffer to
// supply one and avoid that allocation entirely.
func Sort[E Element](s []E) {
	if len(s) <= 1 {
		return
	}
	if len(s) < smallArrayThreshold || patternSorted(s) {
		cmpsort.Sort(s)
		return
	}
	if lo, hi, ok := tryDenseRange(s); ok {
		countingSortUnstable(s, lo, hi)
		return
	}
	SortBuffer(s, make([]E, len(s)))
}

// SortBuffer sorts s in place into non-decreasing order, using buffer
// as radix-sort scratch space instead of allocating one. buffer must
// not alias s and must have length at least len(s); violating either
// precondition panics. buffer's contents are undefined on return.
func SortBuffer[E Element](s, buffer []E) {
	if len(s) <= 1 {
		return
	}
	checkBuffer(s, buffer)
	if len(s) < smallArrayThreshold || patternSorted(s) {
		cmpsort.Sort(s)
		return
	}
	if lo, hi, ok := tryDenseRange(s); ok {
		countingSortUnstable(s, lo, hi)
		return
	}
	radixSort(s, buffer)
}
