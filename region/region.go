// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package region

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Coord is the constraint satisfied by coordinate and extent types.
// The array length is the dimension.
type Coord interface {
	~[1]int | ~[2]int | ~[3]int | ~[4]int | ~[5]int | ~[6]int
}

// Convenience coordinate types for the usual dimensions.
type (
	Index1 = [1]int
	Index2 = [2]int
	Index3 = [3]int
	Index4 = [4]int
)

// ErrNegativeSize is returned when an extent has a negative entry.
var ErrNegativeSize = errors.New("region: negative size")

// Region is a rectangular block of coordinates: Size[k] positions along
// axis k, starting at Index[k].
type Region[C Coord] struct {
	Index C
	Size  C
}

// Make returns the region with the given origin and extent.
func Make[C Coord](index, size C) (Region[C], error) {
	for k := 0; k < len(size); k++ {
		if size[k] < 0 {
			return Region[C]{}, fmt.Errorf("%w: axis %d has size %d", ErrNegativeSize, k, size[k])
		}
	}
	return Region[C]{Index: index, Size: size}, nil
}

// FromSize returns the region of the given extent anchored at the origin.
func FromSize[C Coord](size C) (Region[C], error) {
	var zero C
	return Make(zero, size)
}

// Dimension returns the number of axes.
func (r Region[C]) Dimension() int {
	return len(r.Size)
}

// End returns the exclusive upper corner of the region.
func (r Region[C]) End() C {
	var end C
	for k := 0; k < len(end); k++ {
		end[k] = r.Index[k] + r.Size[k]
	}
	return end
}

// NumberOfPixels returns the product of the extents.
func (r Region[C]) NumberOfPixels() int {
	return lo.Reduce(Slice(r.Size), func(n, s, _ int) int {
		return n * s
	}, 1)
}

// IsEmpty reports whether the region has no pixels.
func (r Region[C]) IsEmpty() bool {
	for k := 0; k < len(r.Size); k++ {
		if r.Size[k] <= 0 {
			return true
		}
	}
	return false
}

// IsInside reports whether idx lies in the region.
func (r Region[C]) IsInside(idx C) bool {
	for k := 0; k < len(idx); k++ {
		if idx[k] < r.Index[k] || idx[k]-r.Index[k] >= r.Size[k] {
			return false
		}
	}
	return true
}

// Contains reports whether other lies entirely in r. An empty region is
// contained everywhere.
func (r Region[C]) Contains(other Region[C]) bool {
	if other.IsEmpty() {
		return true
	}
	for k := 0; k < len(r.Size); k++ {
		if other.Index[k] < r.Index[k] {
			return false
		}
		// Compared without forming other's end, which may overflow.
		if other.Size[k] > r.Index[k]+r.Size[k]-other.Index[k] {
			return false
		}
	}
	return true
}

// Intersect returns the overlap of two regions. Axes on which the regions
// do not overlap get a zero extent.
func (r Region[C]) Intersect(other Region[C]) Region[C] {
	var out Region[C]
	for k := 0; k < len(r.Size); k++ {
		start := max(r.Index[k], other.Index[k])
		stop := min(r.Index[k]+r.Size[k], other.Index[k]+other.Size[k])
		out.Index[k] = start
		out.Size[k] = max(stop-start, 0)
	}
	return out
}

// Equal reports whether both regions have the same origin and extent.
func (r Region[C]) Equal(other Region[C]) bool {
	return Equal(r.Index, other.Index) && Equal(r.Size, other.Size)
}

// String formats the region as "[i0,i1,...]+(s0,s1,...)".
func (r Region[C]) String() string {
	return "[" + Format(r.Index) + "]+(" + Format(r.Size) + ")"
}

// Slice copies c into a new int slice.
func Slice[C Coord](c C) []int {
	s := make([]int, len(c))
	for k := range s {
		s[k] = c[k]
	}
	return s
}

// FromSlice builds a coordinate from s. It fails when the lengths differ.
func FromSlice[C Coord](s []int) (C, error) {
	var c C
	if len(s) != len(c) {
		return c, fmt.Errorf("region: got %d values, want %d", len(s), len(c))
	}
	for k := range s {
		c[k] = s[k]
	}
	return c, nil
}

// Equal reports whether two coordinates match on every axis.
func Equal[C Coord](a, b C) bool {
	for k := 0; k < len(a); k++ {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}

// Add returns a+b per axis.
func Add[C Coord](a, b C) C {
	for k := 0; k < len(a); k++ {
		a[k] += b[k]
	}
	return a
}

// Sub returns a-b per axis.
func Sub[C Coord](a, b C) C {
	for k := 0; k < len(a); k++ {
		a[k] -= b[k]
	}
	return a
}

// Format renders a coordinate as comma separated integers.
func Format[C Coord](c C) string {
	return strings.Join(lo.Map(Slice(c), func(v, _ int) string {
		return fmt.Sprint(v)
	}), ",")
}
