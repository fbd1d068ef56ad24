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

// Package codec implements the order-preserving bit codec: a
// reversible mapping from each of the six element types to a
// same-width unsigned integer such that unsigned comparison of the
// encoded form agrees with the element's natural order. Radix and
// range-detection both depend on this.
package codec

import (
	"math"
	"unsafe"
)

const (
	signBit32 = uint32(1) << 31
	signBit64 = uint64(1) << 63
)

// EncodeInt32 maps x to its order-preserving unsigned form.
func EncodeInt32(x int32) uint32 { return uint32(x) ^ signBit32 }

// DecodeInt32 is the exact inverse of EncodeInt32.
func DecodeInt32(u uint32) int32 { return int32(u ^ signBit32) }

// EncodeUint32 is the identity map: unsigned integers already compare
// correctly as unsigned integers.
func EncodeUint32(x uint32) uint32 { return x }

// DecodeUint32 is the identity map.
func DecodeUint32(u uint32) uint32 { return u }

// EncodeInt64 maps x to its order-preserving unsigned form.
func EncodeInt64(x int64) uint64 { return uint64(x) ^ signBit64 }

// DecodeInt64 is the exact inverse of EncodeInt64.
func DecodeInt64(u uint64) int64 { return int64(u ^ signBit64) }

// EncodeUint64 is the identity map.
func EncodeUint64(x uint64) uint64 { return x }

// DecodeUint64 is the identity map.
func DecodeUint64(u uint64) uint64 { return u }

// EncodeFloat32 maps x to an unsigned form under which unsigned
// comparison agrees with IEEE-754 total order for non-NaN values:
// non-negative numbers get their sign bit set, negative numbers are
// bitwise inverted (so a more-negative float yields a smaller code).
func EncodeFloat32(x float32) uint32 {
	b := math.Float32bits(x)
	if b&signBit32 != 0 {
		return ^b
	}
	return b ^ signBit32
}

// DecodeFloat32 is the exact inverse of EncodeFloat32.
func DecodeFloat32(u uint32) float32 {
	if u&signBit32 != 0 {
		return math.Float32frombits(u ^ signBit32)
	}
	return math.Float32frombits(^u)
}

// EncodeFloat64 maps x to an unsigned form under which unsigned
// comparison agrees with IEEE-754 total order for non-NaN values.
func EncodeFloat64(x float64) uint64 {
	b := math.Float64bits(x)
	if b&signBit64 != 0 {
		return ^b
	}
	return b ^ signBit64
}

// DecodeFloat64 is the exact inverse of EncodeFloat64.
func DecodeFloat64(u uint64) float64 {
	if u&signBit64 != 0 {
		return math.Float64frombits(u ^ signBit64)
	}
	return math.Float64frombits(^u)
}

// Words32 reinterprets s's backing array as a []uint32 of the same
// length, without copying. T must be a 4-byte-wide element type; s and
// the returned slice alias the same storage.
func Words32[T ~int32 | ~uint32 | ~float32](s []T) []uint32 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&s[0])), len(s))
}

// Words64 reinterprets s's backing array as a []uint64 of the same
// length, without copying.
func Words64[T ~int64 | ~uint64 | ~float64](s []T) []uint64 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&s[0])), len(s))
}

// EncodeWordsInt32 replaces every element of s with its order-
// preserving unsigned code, in place, through the word view.
func EncodeWordsInt32(s []int32) {
	words := Words32(s)
	for i, w := range words {
		words[i] = w ^ signBit32
	}
}

// DecodeWordsInt32 is the exact inverse of EncodeWordsInt32 (the XOR
// is self-inverse).
func DecodeWordsInt32(s []int32) { EncodeWordsInt32(s) }

// EncodeWordsInt64 replaces every element of s with its order-
// preserving unsigned code, in place.
func EncodeWordsInt64(s []int64) {
	words := Words64(s)
	for i, w := range words {
		words[i] = w ^ signBit64
	}
}

// DecodeWordsInt64 is the exact inverse of EncodeWordsInt64.
func DecodeWordsInt64(s []int64) { EncodeWordsInt64(s) }

// EncodeWordsFloat32 replaces every element of s with its order-
// preserving unsigned code, in place, through the word view.
func EncodeWordsFloat32(s []float32) {
	words := Words32(s)
	for i, w := range words {
		if w&signBit32 != 0 {
			words[i] = ^w
		} else {
			words[i] = w ^ signBit32
		}
	}
}

// DecodeWordsFloat32 is the exact inverse of EncodeWordsFloat32.
func DecodeWordsFloat32(s []float32) {
	words := Words32(s)
	for i, w := range words {
		if w&signBit32 != 0 {
			words[i] = w ^ signBit32
		} else {
			words[i] = ^w
		}
	}
}

// EncodeWordsFloat64 replaces every element of s with its order-
// preserving unsigned code, in place, through the word view.
func EncodeWordsFloat64(s []float64) {
	words := Words64(s)
	for i, w := range words {
		if w&signBit64 != 0 {
			words[i] = ^w
		} else {
			words[i] = w ^ signBit64
		}
	}
}

// DecodeWordsFloat64 is the exact inverse of EncodeWordsFloat64.
func DecodeWordsFloat64(s []float64) {
	words := Words64(s)
	for i, w := range words {
		if w&signBit64 != 0 {
			words[i] = w ^ signBit64
		} else {
			words[i] = ^w
		}
	}
}
