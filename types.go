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

import "github.com/sneller-labs/tieredsort/internal/numeric"

// Integer is the set of signed and unsigned 32- and 64-bit integer
// element types this package sorts.
type Integer = numeric.Integer

// Float is the set of 32- and 64-bit IEEE-754 floating-point element
// types this package sorts.
type Float = numeric.Float

// Element is the sealed family of element types supported by Sort,
// StableSort, and their buffer-taking variants.
type Element = numeric.Ordered

// Key is the set of types a SortByKey key function may return.
type Key = numeric.Key

const smallArrayThreshold = 256
