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
	"math/rand"
	"sort"
	"testing"
)

type record struct {
	id  int32
	seq int
}

func TestSortByKeyDenseRangeStable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 40000
	items := make([]record, n)
	for i := range items {
		items[i] = record{id: rng.Int31n(40), seq: i}
	}
	want := append([]record(nil), items...)
	sort.SliceStable(want, func(i, j int) bool { return want[i].id < want[j].id })

	SortByKey(items, func(r record) int32 { return r.id })
	for i := range items {
		if items[i] != want[i] {
			t.Fatalf("mismatch at %d: got %+v want %+v", i, items[i], want[i])
		}
	}
}

func TestSortByKeySparseFallbackStable(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	n := 5000
	items := make([]record, n)
	for i := range items {
		items[i] = record{id: rng.Int31(), seq: i}
	}
	want := append([]record(nil), items...)
	sort.SliceStable(want, func(i, j int) bool { return want[i].id < want[j].id })

	SortByKey(items, func(r record) int32 { return r.id })
	for i := range items {
		if items[i] != want[i] {
			t.Fatalf("mismatch at %d", i)
		}
	}
}

func TestSortByKeyUint32Keys(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	type urecord struct {
		id  uint32
		seq int
	}
	n := 10000
	items := make([]urecord, n)
	for i := range items {
		items[i] = urecord{id: rng.Uint32() % 80, seq: i}
	}
	want := append([]urecord(nil), items...)
	sort.SliceStable(want, func(i, j int) bool { return want[i].id < want[j].id })

	SortByKey(items, func(r urecord) uint32 { return r.id })
	for i := range items {
		if items[i] != want[i] {
			t.Fatalf("mismatch at %d", i)
		}
	}
}

func TestSortByKeyBoundarySizes(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, n := range []int{0, 1, 2, 255, 256, 257} {
		items := make([]record, n)
		for i := range items {
			items[i] = record{id: rng.Int31n(1000), seq: i}
		}
		want := append([]record(nil), items...)
		sort.SliceStable(want, func(i, j int) bool { return want[i].id < want[j].id })
		SortByKey(items, func(r record) int32 { return r.id })
		for i := range items {
			if items[i] != want[i] {
				t.Fatalf("n=%d: mismatch at %d", n, i)
			}
		}
	}
}

func TestSortByKeyBufferPanicsOnAliasedBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on aliased buffer")
		}
	}()
	items := make([]record, 1000)
	SortByKeyBuffer(items, items, func(r record) int32 { return r.id })
}

func TestSortByKeyNeverFabricatesRecords(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := 2000
	items := make([]record, n)
	seen := map[int]bool{}
	for i := range items {
		items[i] = record{id: rng.Int31n(20), seq: i}
		seen[i] = true
	}
	SortByKey(items, func(r record) int32 { return r.id })
	if len(items) != n {
		t.Fatalf("length changed: got %d want %d", len(items), n)
	}
	for _, it := range items {
		if !seen[it.seq] {
			t.Fatalf("record with unknown seq %d appeared", it.seq)
		}
		delete(seen, it.seq)
	}
	if len(seen) != 0 {
		t.Fatalf("%d original records went missing", len(seen))
	}
}
