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

// Package radix implements the LSD byte-radix fallback: four passes
// over the 32-bit unsigned view, eight over the 64-bit view, each a
// full stable counting-sort-by-byte. Every element-type wrapper first
// reinterprets its slice as the same-width unsigned view (no copy),
// bit-codes it in place so unsigned comparison agrees with the
// element's natural order, runs the width-generic passes, then
// decodes back.
package radix

import "github.com/sneller-labs/tieredsort/internal/codec"

const radixBits = 8
const radixBuckets = 1 << radixBits

// sortWords32 stable-radix-sorts words in place using scratch as an
// auxiliary buffer of equal length. Four passes always leaves the
// final result back in words, so no copy-back is required in the
// common case; the defensive check below matches the original
// reference implementation's own guard.
func sortWords32(words, scratch []uint32) {
	src, dst := words, scratch
	for shift := uint(0); shift < 32; shift += radixBits {
		radixPass32(src, dst, shift)
		src, dst = dst, src
	}
	if len(src) > 0 && &src[0] != &words[0] {
		copy(words, src)
	}
}

func radixPass32(src, dst []uint32, shift uint) {
	var count [radixBuckets]int
	for _, v := range src {
		count[byte(v>>shift)]++
	}
	for i := 1; i < radixBuckets; i++ {
		count[i] += count[i-1]
	}
	for i := len(src) - 1; i >= 0; i-- {
		b := byte(src[i] >> shift)
		count[b]--
		dst[count[b]] = src[i]
	}
}

// sortWords64 stable-radix-sorts words in place using scratch as an
// auxiliary buffer of equal length. Eight passes always leaves the
// final result back in words.
func sortWords64(words, scratch []uint64) {
	src, dst := words, scratch
	for shift := uint(0); shift < 64; shift += radixBits {
		radixPass64(src, dst, shift)
		src, dst = dst, src
	}
	if len(src) > 0 && &src[0] != &words[0] {
		copy(words, src)
	}
}

func radixPass64(src, dst []uint64, shift uint) {
	var count [radixBuckets]int
	for _, v := range src {
		count[byte(v>>shift)]++
	}
	for i := 1; i < radixBuckets; i++ {
		count[i] += count[i-1]
	}
	for i := len(src) - 1; i >= 0; i-- {
		b := byte(src[i] >> shift)
		count[b]--
		dst[count[b]] = src[i]
	}
}

// SortInt32 stable-radix-sorts s in place using scratch (length at
// least len(s)) as auxiliary space.
func SortInt32(s, scratch []int32) {
	codec.EncodeWordsInt32(s)
	sortWords32(codec.Words32(s), codec.Words32(scratch[:len(s)]))
	codec.DecodeWordsInt32(s)
}

// SortUint32 stable-radix-sorts s in place. Unsigned values need no
// bit-codec transform: their natural order is already unsigned order.
func SortUint32(s, scratch []uint32) {
	sortWords32(s, scratch[:len(s)])
}

// SortFloat32 stable-radix-sorts s in place using scratch (length at
// least len(s)) as auxiliary space.
func SortFloat32(s, scratch []float32) {
	codec.EncodeWordsFloat32(s)
	sortWords32(codec.Words32(s), codec.Words32(scratch[:len(s)]))
	codec.DecodeWordsFloat32(s)
}

// SortInt64 stable-radix-sorts s in place using scratch (length at
// least len(s)) as auxiliary space.
func SortInt64(s, scratch []int64) {
	codec.EncodeWordsInt64(s)
	sortWords64(codec.Words64(s), codec.Words64(scratch[:len(s)]))
	codec.DecodeWordsInt64(s)
}

// SortUint64 stable-radix-sorts s in place.
func SortUint64(s, scratch []uint64) {
	sortWords64(s, scratch[:len(s)])
}

// SortFloat64 stable-radix-sorts s in place using scratch (length at
// least len(s)) as auxiliary space.
func SortFloat64(s, scratch []float64) {
	codec.EncodeWordsFloat64(s)
	sortWords64(codec.Words64(s), codec.Words64(scratch[:len(s)]))
	codec.DecodeWordsFloat64(s)
}
