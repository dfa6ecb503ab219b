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
	"github.com/ajroetker/go-regioniter/accessor"
	"github.com/ajroetker/go-regioniter/region"
)

// PixelIterator is an Iterator whose Get and Set see external pixels of
// type P, converted from stored elements of type S by R.
type PixelIterator[P, S any, C region.Coord, R accessor.Representation[S, P]] struct {
	Iterator[S, C]
	rep R
}

// NewPixel narrows it to a PixelIterator. The cursor, region and check
// setting are copied; it and the result then move independently. The only
// failure is an unbound source.
//
//	pit, err := regioniter.NewPixel[float32](it, accessor.Half{})
func NewPixel[P, S any, C region.Coord, R accessor.Representation[S, P]](it *Iterator[S, C], rep R) (*PixelIterator[P, S, C, R], error) {
	if !it.bound() {
		return nil, ErrUnbound
	}
	return &PixelIterator[P, S, C, R]{Iterator: *it, rep: rep}, nil
}

// Get returns the pixel under the cursor in its external representation.
func (it *PixelIterator[P, S, C, R]) Get() P {
	it.checkDeref("Get")
	return it.rep.ToExternal(it.data[it.offset])
}

// Set stores p under the cursor, converting it to the stored
// representation.
func (it *PixelIterator[P, S, C, R]) Set(p P) {
	it.checkDeref("Set")
	it.data[it.offset] = it.rep.ToStored(p)
}

// Representation returns the converter used by Get and Set.
func (it *PixelIterator[P, S, C, R]) Representation() R {
	return it.rep
}

// ScalarIterator is an Iterator whose Get and Set see the primary scalar V
// of each pixel through the accessor A.
type ScalarIterator[V, S any, C region.Coord, A accessor.Accessor[S, V]] struct {
	Iterator[S, C]
	acc A
}

// NewScalar narrows it to a ScalarIterator with the same cursor.
//
//	acc := accessor.Compose[uint32, pixel.RGBA[uint8], uint8](
//	    accessor.PackedRGBA8{}, accessor.Primary[pixel.RGBA[uint8], uint8]{})
//	sit, err := regioniter.NewScalar[uint8](it, acc)
func NewScalar[V, S any, C region.Coord, A accessor.Accessor[S, V]](it *Iterator[S, C], acc A) (*ScalarIterator[V, S, C, A], error) {
	if !it.bound() {
		return nil, ErrUnbound
	}
	return &ScalarIterator[V, S, C, A]{Iterator: *it, acc: acc}, nil
}

// ScalarFromPixel narrows a PixelIterator further, composing its
// representation with the scalar extractor ext.
func ScalarFromPixel[V, P, S any, C region.Coord, R accessor.Representation[S, P], X accessor.Scalar[P, V]](
	pit *PixelIterator[P, S, C, R], ext X,
) (*ScalarIterator[V, S, C, accessor.Adapter[S, P, V, R, X]], error) {
	if pit == nil {
		return nil, ErrUnbound
	}
	return NewScalar[V](&pit.Iterator, accessor.Compose[S, P, V](pit.rep, ext))
}

// Get returns the primary scalar of the pixel under the cursor.
func (it *ScalarIterator[V, S, C, A]) Get() V {
	it.checkDeref("Get")
	return it.acc.Get(it.data[it.offset])
}

// Set replaces the primary scalar of the pixel under the cursor. The other
// components of a composite pixel are read back and stored unchanged.
func (it *ScalarIterator[V, S, C, A]) Set(v V) {
	it.checkDeref("Set")
	it.acc.Set(&it.data[it.offset], v)
}

// Accessor returns the accessor used by Get and Set.
func (it *ScalarIterator[V, S, C, A]) Accessor() A {
	return it.acc
}
