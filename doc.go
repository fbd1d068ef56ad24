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

// Package tieredsort implements an adaptive in-place sort over six
// fixed-width numeric types: int32, uint32, int64, uint64, float32,
// float64.
//
// # Overview
//
// Sort and StableSort dispatch to one of three paths:
//
//   - Small or already-(reverse-)sorted inputs go through a
//     comparison-sort fallback (internal/cmpsort).
//   - Integer inputs whose values span a range no wider than roughly
//     twice their length go through counting sort (internal/countsort).
//   - Everything else goes through LSD byte-radix sort
//     (internal/radix), via a reversible bit codec (internal/codec)
//     that maps signed integers and IEEE-754 floats onto same-width
//     unsigned integers while preserving natural order.
//
// SortByKey extends the stable path to arbitrary records ordered by a
// caller-supplied int32 or uint32 key, reusing the same pattern and
// dense-range detectors over the extracted keys.
//
// # Limitations
//
// There is no support for custom comparators on the primitive paths,
// no element types outside the six listed above, and no parallelism:
// every operation runs on the calling goroutine. Buffer-taking variants
// (SortBuffer, StableSortBuffer) never allocate beyond the counting-
// sort and radix-sort histograms. Sort allocates a single scratch slice
// of len(s) only when the radix path is chosen; StableSort allocates
// one for every input longer than one element.
//
// # Design
//
// Every public entry point is generic over a sealed element-type
// family and reaches one of six monomorphized implementations through
// a single runtime type switch: compile-time polymorphism over a
// closed set, with just enough runtime dispatch to pick among the six.
package tieredsort
