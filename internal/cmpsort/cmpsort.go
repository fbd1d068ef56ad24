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

// Package cmpsort is the general-purpose comparison-sort fallback used
// for short slices and slices that already look sorted. It plays the
// role of an external collaborator: any correct in-place sort would
// do, so it is kept as a thin, swappable wrapper.
package cmpsort

import (
	"sort"

	"github.com/sneller-labs/tieredsort/internal/numeric"
)

// Sort sorts s in place under its natural order. It does not preserve
// the relative order of equal elements.
func Sort[T numeric.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}

// SortStable sorts s in place under its natural order, preserving the
// relative order of equal elements.
func SortStable[T numeric.Ordered](s []T) {
	sort.SliceStable(s, func(i, j int) bool { return s[i] < s[j] })
}

// SortObjectsStableByKey sorts items in place by the given key
// function, preserving the relative order of items with equal keys.
func SortObjectsStableByKey[T any, K numeric.Key](items []T, key func(T) K) {
	sort.SliceStable(items, func(i, j int) bool { return key(items[i]) < key(items[j]) })
}
