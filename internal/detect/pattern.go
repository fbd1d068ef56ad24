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

// Package detect implements the pattern and dense-range detectors that
// gate the counting-sort and small-array fast paths.
package detect

import "github.com/sneller-labs/tieredsort/internal/numeric"

// Sorted reports whether s looks already sorted, ascending or
// descending, by checking three four-element windows (the prefix, the
// midpoint, and the suffix) for monotonicity; the windows are disjoint
// once s has at least 13 elements. It is a cheap heuristic, not a full
// scan: it can be fooled by adversarial input, and callers must not
// rely on its result for correctness, only for choosing a fast path.
// Inputs shorter than 8 elements are always reported sorted.
func Sorted[T numeric.Ordered](s []T) bool {
	n := len(s)
	if n < 8 {
		return true
	}
	m := n / 2
	return monotoneWindow(s[0], s[1], s[2], s[3]) &&
		monotoneWindow(s[m-1], s[m], s[m+1], s[m+2]) &&
		monotoneWindow(s[n-4], s[n-3], s[n-2], s[n-1])
}

func monotoneWindow[T numeric.Ordered](a, b, c, d T) bool {
	asc := a <= b && b <= c && c <= d
	desc := a >= b && b >= c && c >= d
	return asc || desc
}
