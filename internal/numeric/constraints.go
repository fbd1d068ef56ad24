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

// Package numeric declares the closed families of element types the
// sort engine operates over, as generic type-set constraints.
package numeric

// Integer32 is the set of 32-bit-wide integer element types.
type Integer32 interface {
	~int32 | ~uint32
}

// Integer64 is the set of 64-bit-wide integer element types.
type Integer64 interface {
	~int64 | ~uint64
}

// Integer is the set of all four supported integer element types.
type Integer interface {
	Integer32 | Integer64
}

// Float is the set of both supported floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Ordered is the full sealed family of element types this library
// sorts under natural order.
type Ordered interface {
	Integer | Float
}

// Key is the set of types a key-extracted sort's key function may
// return. Keys are always 32-bit wide regardless of the record type.
type Key interface {
	~int32 | ~uint32
}
