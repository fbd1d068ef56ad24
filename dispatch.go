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
	"github.com/sneller-labs/tieredsort/internal/countsort"
	"github.com/sneller-labs/tieredsort/internal/detect"
	"github.com/sneller-labs/tieredsort/internal/radix"
)

// patternSorted reifies E via a type switch and calls the one generic
// pattern detector instantiated at the concrete element type.
func patternSorted[E Element](s []E) bool {
	switch v := any(s).(type) {
	case []int32:
		return detect.Sorted(v)
	case []uint32:
		return detect.Sorted(v)
	case []int64:
		return detect.Sorted(v)
	case []uint64:
		return detect.Sorted(v)
	case []float32:
		return detect.Sorted(v)
	case []float64:
		return detect.Sorted(v)
	default:
		panic("tieredsort: unsupported element type")
	}
}

// tryDenseRange runs the dense-range detector for integer element
// types. Floating-point element types have no dense-range path and
// always report ok=false.
func tryDenseRange[E Element](s []E) (lo, hi E, ok bool) {
	switch v := any(s).(type) {
	case []int32:
		mn, mx, k := detect.Dense32(v)
		return any(mn).(E), any(mx).(E), k
	case []uint32:
		mn, mx, k := detect.Dense32(v)
		return any(mn).(E), any(mx).(E), k
	case []int64:
		mn, mx, k := detect.Dense64Int64(v)
		return any(mn).(E), any(mx).(E), k
	case []uint64:
		mn, mx, k := detect.Dense64Uint64(v)
		return any(mn).(E), any(mx).(E), k
	default:
		return lo, hi, false
	}
}

func countingSortUnstable[E Element](s []E, lo, hi E) {
	switch v := any(s).(type) {
	case []int32:
		countsort.SortUnstable(v, any(lo).(int32), any(hi).(int32))
	case []uint32:
		countsort.SortUnstable(v, any(lo).(uint32), any(hi).(uint32))
	case []int64:
		countsort.SortUnstable(v, any(lo).(int64), any(hi).(int64))
	case []uint64:
		countsort.SortUnstable(v, any(lo).(uint64), any(hi).(uint64))
	default:
		panic("tieredsort: dense-range path requires an integer element type")
	}
}

func countingSortStable[E Element](s, scratch []E, lo, hi E) {
	switch v := any(s).(type) {
	case []int32:
		countsort.SortStable(v, any(scratch).([]int32), any(lo).(int32), any(hi).(int32))
	case []uint32:
		countsort.SortStable(v, any(scratch).([]uint32), any(lo).(uint32), any(hi).(uint32))
	case []int64:
		countsort.SortStable(v, any(scratch).([]int64), any(lo).(int64), any(hi).(int64))
	case []uint64:
		countsort.SortStable(v, any(scratch).([]uint64), any(lo).(uint64), any(hi).(uint64))
	default:
		panic("tieredsort: dense-range path requires an integer element type")
	}
}

func radixSort[E Element](s, scratch []E) {
	switch v := any(s).(type) {
	case []int32:
		radix.SortInt32(v, any(scratch).([]int32))
	case []uint32:
		radix.SortUint32(v, any(scratch).([]uint32))
	case []int64:
		radix.SortInt64(v, any(scratch).([]int64))
	case []uint64:
		radix.SortUint64(v, any(scratch).([]uint64))
	case []float32:
		radix.SortFloat32(v, any(scratch).([]float32))
	case []float64:
		radix.SortFloat64(v, any(scratch).([]float64))
	default:
		panic("tieredsort: unsupported element type")
	}
}

func checkBuffer[E Element](s, buffer []E) {
	if len(buffer) < len(s) {
		panic("tieredsort: buffer shorter than input")
	}
	if len(s) > 0 && len(buffer) > 0 && &s[0] == &buffer[0] {
		panic("tieredsort: buffer must not alias input")
	}
}
