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

package image

import (
	"fmt"

	"github.com/ajroetker/go-regioniter/region"
)

// Image is a dense N-dimensional array of stored elements of type S.
type Image[S any, C region.Coord] struct {
	data    []S
	size    C
	strides C // offset table, strides[0] == 1
}

// New allocates a zeroed image of the given extent.
func New[S any, C region.Coord](size C) (*Image[S, C], error) {
	n, err := numberOfElements(size)
	if err != nil {
		return nil, err
	}
	return build(make([]S, n), size), nil
}

// Wrap adopts data as the storage of an image of the given extent. The
// slice is used in place, not copied.
func Wrap[S any, C region.Coord](data []S, size C) (*Image[S, C], error) {
	n, err := numberOfElements(size)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: got %d elements, size %s needs %d",
			ErrSizeMismatch, len(data), region.Format(size), n)
	}
	return build(data, size), nil
}

func numberOfElements[C region.Coord](size C) (int, error) {
	n := 1
	for k := 0; k < len(size); k++ {
		if size[k] < 0 {
			return 0, fmt.Errorf("%w: axis %d has size %d", ErrNegativeSize, k, size[k])
		}
		n *= size[k]
	}
	return n, nil
}

func build[S any, C region.Coord](data []S, size C) *Image[S, C] {
	img := &Image[S, C]{data: data, size: size}
	stride := 1
	for k := 0; k < len(size); k++ {
		img.strides[k] = stride
		stride *= size[k]
	}
	return img
}

// Size returns the full extent of the buffer.
func (img *Image[S, C]) Size() C {
	return img.size
}

// Strides returns the offset table: Strides()[k] is the number of elements
// between two neighbors along axis k.
func (img *Image[S, C]) Strides() C {
	return img.strides
}

// Data returns the underlying storage. Writes through it are visible to
// every iterator bound to the image.
func (img *Image[S, C]) Data() []S {
	return img.data
}

// Len returns the number of stored elements.
func (img *Image[S, C]) Len() int {
	return len(img.data)
}

// Dimension returns the number of axes.
func (img *Image[S, C]) Dimension() int {
	return len(img.size)
}

// LargestRegion returns the region covering the whole buffer.
func (img *Image[S, C]) LargestRegion() region.Region[C] {
	return region.Region[C]{Size: img.size}
}

// CheckRegion returns an error wrapping ErrRegionOutOfBounds unless r lies
// inside the buffer.
func (img *Image[S, C]) CheckRegion(r region.Region[C]) error {
	for k := 0; k < len(r.Size); k++ {
		if r.Size[k] < 0 {
			return fmt.Errorf("%w: region %s has negative size on axis %d",
				ErrRegionOutOfBounds, r, k)
		}
	}
	if !img.LargestRegion().Contains(r) {
		return fmt.Errorf("%w: region %s, buffer %s",
			ErrRegionOutOfBounds, r, img.LargestRegion())
	}
	return nil
}

// ComputeOffset returns the linear offset of idx. idx is not validated.
func (img *Image[S, C]) ComputeOffset(idx C) int {
	off := 0
	for k := 0; k < len(idx); k++ {
		off += idx[k] * img.strides[k]
	}
	return off
}

// ComputeIndex is the inverse of ComputeOffset for offsets inside the
// buffer. An empty buffer maps every offset to the origin.
func (img *Image[S, C]) ComputeIndex(offset int) C {
	var idx C
	if len(img.data) == 0 {
		return idx
	}
	for k := len(idx) - 1; k > 0; k-- {
		idx[k] = offset / img.strides[k]
		offset -= idx[k] * img.strides[k]
	}
	idx[0] = offset
	return idx
}

// At returns the element at idx. Out of bounds coordinates yield the zero
// value.
func (img *Image[S, C]) At(idx C) S {
	if !img.LargestRegion().IsInside(idx) {
		var zero S
		return zero
	}
	return img.data[img.ComputeOffset(idx)]
}

// SetAt stores v at idx. Out of bounds coordinates are ignored.
func (img *Image[S, C]) SetAt(idx C, v S) {
	if !img.LargestRegion().IsInside(idx) {
		return
	}
	img.data[img.ComputeOffset(idx)] = v
}

// AtBoundary returns the element at idx, folding coordinates outside the
// buffer back in with the given policy. With region.BoundaryClamp this is
// nearest-neighbor extrapolation. An empty image yields the zero value.
func (img *Image[S, C]) AtBoundary(idx C, b region.Boundary) S {
	full := img.LargestRegion()
	if full.IsEmpty() {
		var zero S
		return zero
	}
	return img.data[img.ComputeOffset(full.Fold(idx, b))]
}

// SameSize reports whether both images have the same extent.
func SameSize[S, T any, C region.Coord](a *Image[S, C], b *Image[T, C]) bool {
	return region.Equal(a.size, b.size)
}

// Clone creates a deep copy of the image.
func (img *Image[S, C]) Clone() *Image[S, C] {
	data := make([]S, len(img.data))
	copy(data, img.data)
	return build(data, img.size)
}

// Clear sets all elements to the zero value.
func (img *Image[S, C]) Clear() {
	clear(img.data)
}

// Fill sets all elements to v.
func (img *Image[S, C]) Fill(v S) {
	for i := range img.data {
		img.data[i] = v
	}
}
