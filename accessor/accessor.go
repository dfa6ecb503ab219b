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

package accessor

// Representation maps a stored element S to the external pixel P and back.
type Representation[S, P any] interface {
	ToExternal(stored S) P
	ToStored(external P) S
}

// Scalar maps an external pixel P to its primary scalar V and back.
// WithScalar returns p with only the primary component replaced.
type Scalar[P, V any] interface {
	Scalar(p P) V
	WithScalar(p P, v V) P
}

// Accessor reads and writes the scalar view of a stored element in place.
type Accessor[S, V any] interface {
	Get(stored S) V
	Set(stored *S, v V)
}

// Adapter composes a Representation and a Scalar into an Accessor.
type Adapter[S, P, V any, R Representation[S, P], X Scalar[P, V]] struct {
	Rep R
	Ext X
}

// Compose builds the adapter reading through rep and then ext.
func Compose[S, P, V any, R Representation[S, P], X Scalar[P, V]](rep R, ext X) Adapter[S, P, V, R, X] {
	return Adapter[S, P, V, R, X]{Rep: rep, Ext: ext}
}

// ScalarOnly builds an adapter for images whose stored and external pixel
// types are the same.
func ScalarOnly[P, V any, X Scalar[P, V]](ext X) Adapter[P, P, V, Identity[P], X] {
	return Adapter[P, P, V, Identity[P], X]{Ext: ext}
}

// Get returns the primary scalar of the stored element.
func (a Adapter[S, P, V, R, X]) Get(stored S) V {
	return a.Ext.Scalar(a.Rep.ToExternal(stored))
}

// Set replaces the primary scalar of *stored. The current pixel is decoded,
// patched and encoded back as a whole, so the other components survive.
func (a Adapter[S, P, V, R, X]) Set(stored *S, v V) {
	p := a.Rep.ToExternal(*stored)
	*stored = a.Rep.ToStored(a.Ext.WithScalar(p, v))
}

// Pixel returns the full external pixel of the stored element.
func (a Adapter[S, P, V, R, X]) Pixel(stored S) P {
	return a.Rep.ToExternal(stored)
}

// Identity is the pass-through representation and scalar extractor.
type Identity[T any] struct{}

func (Identity[T]) ToExternal(s T) T { return s }
func (Identity[T]) ToStored(p T) T   { return p }
func (Identity[T]) Scalar(p T) T     { return p }

func (Identity[T]) WithScalar(_ T, v T) T { return v }
