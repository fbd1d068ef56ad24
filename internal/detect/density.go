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

package detect

import (
	"github.com/sneller-labs/tieredsort/internal/codec"
	"github.com/sneller-labs/tieredsort/internal/numeric"
)

// The sample stage and the confirm stage use different acceptance
// thresholds against n. This is not a typo: the sample stage rejects
// on a strictly tighter bound (est > n) than the confirm stage accepts
// on (range <= 2n), inherited as-is rather than unified.
const (
	sampleDensityLimit      = 1
	confirmDensityMultiplier = 2
	sampleStrideDivisor      = 64
)

// Dense32 runs the two-stage dense-range detector over a 32-bit-wide
// integer slice. Range arithmetic is widened to int64, which is always
// overflow-safe for this element width.
func Dense32[T numeric.Integer32](s []T) (min, max T, ok bool) {
	n := len(s)
	smin, smax := sample(s)
	if !fits64(int64(smin), int64(smax), int64(n)*sampleDensityLimit) {
		return
	}
	fmin, fmax := scan(s)
	if !fits64(int64(fmin), int64(fmax), int64(n)*confirmDensityMultiplier) {
		return
	}
	return fmin, fmax, true
}

// Dense64Int64 runs the detector over int64, widening through the
// integer branch of the bit codec so the subtraction is always
// unsigned and wraparound-safe.
func Dense64Int64(s []int64) (min, max int64, ok bool) {
	n := len(s)
	smin, smax := sample(s)
	if !fitsU64(codec.EncodeInt64(smin), codec.EncodeInt64(smax), uint64(n)*sampleDensityLimit) {
		return
	}
	fmin, fmax := scan(s)
	if !fitsU64(codec.EncodeInt64(fmin), codec.EncodeInt64(fmax), uint64(n)*confirmDensityMultiplier) {
		return
	}
	return fmin, fmax, true
}

// Dense64Uint64 runs the detector over uint64.
func Dense64Uint64(s []uint64) (min, max uint64, ok bool) {
	n := len(s)
	smin, smax := sample(s)
	if !fitsU64(smin, smax, uint64(n)*sampleDensityLimit) {
		return
	}
	fmin, fmax := scan(s)
	if !fitsU64(fmin, fmax, uint64(n)*confirmDensityMultiplier) {
		return
	}
	return fmin, fmax, true
}

// sample scans every strided element (stride = max(1, n/64)) to
// estimate min and max cheaply.
func sample[T numeric.Integer](s []T) (min, max T) {
	stride := len(s) / sampleStrideDivisor
	if stride < 1 {
		stride = 1
	}
	min, max = s[0], s[0]
	for i := 0; i < len(s); i += stride {
		if v := s[i]; v < min {
			min = v
		} else if v > max {
			max = v
		}
	}
	return
}

// scan finds the exact min and max over every element.
func scan[T numeric.Integer](s []T) (min, max T) {
	min, max = s[0], s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		} else if v > max {
			max = v
		}
	}
	return
}

func fits64(min, max, limit int64) bool {
	return max-min+1 <= limit
}

// fitsU64 reports whether the inclusive range [umin, umax] fits within
// limit, treating the range-plus-one overflow to zero (the full 2^64
// span) as exceeding any finite limit.
func fitsU64(umin, umax, limit uint64) bool {
	diff := umax - umin
	if diff == ^uint64(0) {
		return false
	}
	return diff+1 <= limit
}
