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

package regioniter

import (
	"fmt"

	"github.com/ajroetker/go-regioniter/image"
	"github.com/ajroetker/go-regioniter/region"
)

// Iterator walks a region of an image and gives access to the stored
// elements. The zero value is unbound and only useful as a target for
// assignment.
type Iterator[S any, C region.Coord] struct {
	img     *image.Image[S, C]
	data    []S
	region  region.Region[C]
	end     C // exclusive upper corner of the region
	strides C // image offset table
	pos     C // current coordinate
	offset  int
	empty   bool
	checks  bool
}

// New returns an iterator over r positioned at the first pixel of r, the
// one with the smallest coordinate on every axis. An empty region yields an
// iterator that is already at end.
func New[S any, C region.Coord](img *image.Image[S, C], r region.Region[C]) (*Iterator[S, C], error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if err := img.CheckRegion(r); err != nil {
		return nil, err
	}
	it := &Iterator[S, C]{
		img:     img,
		data:    img.Data(),
		region:  r,
		end:     r.End(),
		strides: img.Strides(),
		empty:   r.IsEmpty(),
		checks:  debugChecks,
	}
	it.GoToBegin()
	return it, nil
}

// NewFull returns an iterator over the whole image.
func NewFull[S any, C region.Coord](img *image.Image[S, C]) (*Iterator[S, C], error) {
	if img == nil {
		return nil, ErrNilImage
	}
	return New(img, img.LargestRegion())
}

// EnableChecks turns on precondition checks for this iterator: stepping
// past a sentinel, dereferencing at one and SetIndex outside the region
// panic with an error wrapping ErrSentinel.
func (it *Iterator[S, C]) EnableChecks() {
	it.checks = true
}

// Checked reports whether precondition checks are on.
func (it *Iterator[S, C]) Checked() bool {
	return it.checks
}

// Next moves to the following pixel in row-major order. Calling Next while
// IsAtEnd is true is a precondition violation.
func (it *Iterator[S, C]) Next() {
	if it.checks && it.IsAtEnd() {
		it.fail("Next")
	}
	it.offset++
	it.pos[0]++
	if it.pos[0] < it.end[0] {
		return
	}
	it.carry()
}

// carry resets every overflowed axis to the region start and increments
// the next slower one. The last axis is left overflowed: that is the
// after-end sentinel.
func (it *Iterator[S, C]) carry() {
	last := len(it.pos) - 1
	for k := 0; k < last && it.pos[k] >= it.end[k]; k++ {
		it.pos[k] = it.region.Index[k]
		it.offset -= it.region.Size[k] * it.strides[k]
		it.pos[k+1]++
		it.offset += it.strides[k+1]
	}
}

// Prev moves to the preceding pixel in row-major order. Calling Prev while
// IsAtBegin is true is a precondition violation.
func (it *Iterator[S, C]) Prev() {
	if it.checks && it.IsAtBegin() {
		it.fail("Prev")
	}
	it.offset--
	it.pos[0]--
	if it.pos[0] >= it.region.Index[0] {
		return
	}
	it.borrow()
}

// borrow is carry in reverse; an underflowed last axis is the before-begin
// sentinel.
func (it *Iterator[S, C]) borrow() {
	last := len(it.pos) - 1
	for k := 0; k < last && it.pos[k] < it.region.Index[k]; k++ {
		it.pos[k] = it.end[k] - 1
		it.offset += it.region.Size[k] * it.strides[k]
		it.pos[k+1]--
		it.offset -= it.strides[k+1]
	}
}

// IsAtEnd reports whether the iterator is one step past the last pixel.
// It is always true for an empty region.
func (it *Iterator[S, C]) IsAtEnd() bool {
	last := len(it.pos) - 1
	return it.empty || it.pos[last] >= it.end[last]
}

// IsAtBegin reports whether the iterator is one step before the first
// pixel. It is always true for an empty region.
func (it *Iterator[S, C]) IsAtBegin() bool {
	last := len(it.pos) - 1
	return it.empty || it.pos[last] < it.region.Index[last]
}

// GoToBegin moves to the first pixel of the region.
func (it *Iterator[S, C]) GoToBegin() {
	if it.empty {
		it.GoToEnd()
		return
	}
	it.moveTo(it.region.Index)
}

// GoToEnd moves one step past the last pixel.
func (it *Iterator[S, C]) GoToEnd() {
	pos := it.region.Index
	last := len(pos) - 1
	pos[last] = it.end[last]
	it.moveTo(pos)
}

// GoToLast moves to the last pixel of the region, the starting point of a
// reverse walk.
func (it *Iterator[S, C]) GoToLast() {
	if it.empty {
		it.GoToBeforeBegin()
		return
	}
	var pos C
	for k := 0; k < len(pos); k++ {
		pos[k] = it.end[k] - 1
	}
	it.moveTo(pos)
}

// GoToBeforeBegin moves one step before the first pixel, the end of a
// reverse walk.
func (it *Iterator[S, C]) GoToBeforeBegin() {
	var pos C
	last := len(pos) - 1
	for k := 0; k < last; k++ {
		pos[k] = it.end[k] - 1
	}
	pos[last] = it.region.Index[last] - 1
	if it.empty {
		pos = it.region.Index
	}
	it.moveTo(pos)
}

// SetIndex moves to idx, which must lie inside the region.
func (it *Iterator[S, C]) SetIndex(idx C) {
	if it.checks && !it.region.IsInside(idx) {
		panic(fmt.Errorf("%w: SetIndex(%s) outside %s", ErrSentinel, region.Format(idx), it.region))
	}
	it.moveTo(idx)
}

func (it *Iterator[S, C]) moveTo(pos C) {
	it.pos = pos
	it.offset = 0
	for k := 0; k < len(pos); k++ {
		it.offset += pos[k] * it.strides[k]
	}
}

// Index returns the current coordinate. At a sentinel it returns the
// coordinate the sentinel is encoded as, which lies outside the region.
func (it *Iterator[S, C]) Index() C {
	return it.pos
}

// Offset returns the linear offset of the current pixel in the image
// buffer.
func (it *Iterator[S, C]) Offset() int {
	return it.offset
}

// Region returns the region being walked.
func (it *Iterator[S, C]) Region() region.Region[C] {
	return it.region
}

// Image returns the image being walked.
func (it *Iterator[S, C]) Image() *image.Image[S, C] {
	return it.img
}

// Value returns a pointer to the stored element under the cursor. This is
// the fastest access path and bypasses any accessor.
func (it *Iterator[S, C]) Value() *S {
	it.checkDeref("Value")
	return &it.data[it.offset]
}

// Raw returns the stored element under the cursor.
func (it *Iterator[S, C]) Raw() S {
	it.checkDeref("Raw")
	return it.data[it.offset]
}

// SetRaw overwrites the stored element under the cursor.
func (it *Iterator[S, C]) SetRaw(v S) {
	it.checkDeref("SetRaw")
	it.data[it.offset] = v
}

func (it *Iterator[S, C]) bound() bool {
	return it != nil && it.img != nil
}

func (it *Iterator[S, C]) checkDeref(op string) {
	if it.checks && (it.IsAtEnd() || it.IsAtBegin()) {
		it.fail(op)
	}
}

func (it *Iterator[S, C]) fail(op string) {
	panic(fmt.Errorf("%w: %s at index [%s] of region %s",
		ErrSentinel, op, region.Format(it.pos), it.region))
}
