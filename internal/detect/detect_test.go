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
	"math/rand"
	"testing"
)

func TestSortedShortAlwaysTrue(t *testing.T) {
	for n := 0; n < 8; n++ {
		s := make([]int32, n)
		rand.New(rand.NewSource(int64(n))).Shuffle(n, func(i, j int) { s[i], s[j] = s[j], s[i] })
		if !Sorted(s) {
			t.Fatalf("n=%d must always report sorted", n)
		}
	}
}

func TestSortedAscending(t *testing.T) {
	s := make([]int32, 100)
	for i := range s {
		s[i] = int32(i)
	}
	if !Sorted(s) {
		t.Fatal("ascending run must be detected as sorted")
	}
}

func TestSortedDescending(t *testing.T) {
	s := make([]int32, 100)
	for i := range s {
		s[i] = int32(100 - i)
	}
	if !Sorted(s) {
		t.Fatal("descending run must be detected as sorted")
	}
}

func TestSortedRejectsShuffled(t *testing.T) {
	s := make([]int32, 200)
	for i := range s {
		s[i] = int32(i)
	}
	rand.New(rand.NewSource(7)).Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	// A fully random shuffle of this size overwhelmingly fails at
	// least one of the three windows; this is a heuristic, so we only
	// assert it can say no (for this seed), not that it always does.
	if Sorted(s) {
		t.Fatal("shuffled input with seed 7 must not be detected as sorted")
	}
}

func TestDense32AcceptsDenseRange(t *testing.T) {
	n := 1000
	s := make([]int32, n)
	rng := rand.New(rand.NewSource(11))
	for i := range s {
		s[i] = int32(rng.Intn(50))
	}
	min, max, ok := Dense32(s)
	if !ok {
		t.Fatal("expected dense range to be detected")
	}
	if min != 0 || max != 49 {
		// range may be narrower than 50 depending on sampling luck of hitting extremes
		if max-min+1 > 50 {
			t.Fatalf("range too wide: [%d,%d]", min, max)
		}
	}
}

func TestDense32RejectsSparseRange(t *testing.T) {
	n := 1000
	s := make([]int32, n)
	rng := rand.New(rand.NewSource(12))
	for i := range s {
		s[i] = rng.Int31()
	}
	if _, _, ok := Dense32(s); ok {
		t.Fatal("expected sparse range to be rejected")
	}
}

func TestDense64Int64RoundTripsSign(t *testing.T) {
	s := []int64{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4}
	for i := 0; i < 100; i++ {
		s = append(s, s[i%10])
	}
	min, max, ok := Dense64Int64(s)
	if !ok {
		t.Fatal("expected dense range over signed 64-bit values")
	}
	if min != -5 || max != 4 {
		t.Fatalf("got [%d,%d], want [-5,4]", min, max)
	}
}

func TestDense64Uint64Basic(t *testing.T) {
	s := make([]uint64, 500)
	for i := range s {
		s[i] = uint64(i % 20)
	}
	min, max, ok := Dense64Uint64(s)
	if !ok || min != 0 || max != 19 {
		t.Fatalf("got min=%d max=%d ok=%v, want [0,19] true", min, max, ok)
	}
}

func TestFitsU64OverflowGuard(t *testing.T) {
	if fitsU64(0, ^uint64(0), ^uint64(0)) {
		t.Fatal("a full 2^64 span must never be reported as fitting a finite limit")
	}
}
