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
	"iter"

	"github.com/ajroetker/go-regioniter/region"
)

// All walks from the current position to the end of the region, yielding
// each coordinate with a pointer to its stored element. The iterator
// advances as the sequence is consumed and is left at end once the
// sequence is exhausted. A walk started at before-begin first steps onto
// the first pixel.
//
// The yielded coordinate is a copy; the pointer stays valid as long as the
// image does.
func (it *Iterator[S, C]) All() iter.Seq2[C, *S] {
	return func(yield func(C, *S) bool) {
		if it.IsAtBegin() && !it.IsAtEnd() {
			it.Next()
		}
		for ; !it.IsAtEnd(); it.Next() {
			if !yield(it.pos, &it.data[it.offset]) {
				return
			}
		}
	}
}

// Backward walks from the current position back to before-begin, the
// reverse of All. A walk started at end first steps onto the last pixel.
func (it *Iterator[S, C]) Backward() iter.Seq2[C, *S] {
	return func(yield func(C, *S) bool) {
		if it.IsAtEnd() && !it.IsAtBegin() {
			it.Prev()
		}
		for ; !it.IsAtBegin(); it.Prev() {
			if !yield(it.pos, &it.data[it.offset]) {
				return
			}
		}
	}
}

// Scalars walks like All but yields the scalar view of each pixel.
func (it *ScalarIterator[V, S, C, A]) Scalars() iter.Seq2[C, V] {
	return func(yield func(C, V) bool) {
		for idx, s := range it.All() {
			if !yield(idx, it.acc.Get(*s)) {
				return
			}
		}
	}
}

// Zip walks a and b in lockstep from their current positions until either
// reaches end. An iterator at before-begin first steps onto its first pixel. Both regions must have the same size; their origins and
// images may differ. Because enumeration order only depends on the region
// size, the yielded pointers refer to corresponding pixels.
func Zip[S, T any, C region.Coord](a *Iterator[S, C], b *Iterator[T, C]) (iter.Seq2[*S, *T], error) {
	if !a.bound() || !b.bound() {
		return nil, ErrUnbound
	}
	if !region.Equal(a.region.Size, b.region.Size) {
		return nil, fmt.Errorf("%w: %s and %s", ErrIncongruent, a.region, b.region)
	}
	return func(yield func(*S, *T) bool) {
		if a.IsAtBegin() && !a.IsAtEnd() {
			a.Next()
		}
		if b.IsAtBegin() && !b.IsAtEnd() {
			b.Next()
		}
		for ; !a.IsAtEnd() && !b.IsAtEnd(); a.Next() {
			if !yield(a.Value(), b.Value()) {
				return
			}
			b.Next()
		}
	}, nil
}
