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

package pixel

// Composite is implemented by multi-component pixels. Primary returns the
// component the pixel type designates as its canonical scalar; WithPrimary
// returns a copy with only that component replaced.
type Composite[P any, T any] interface {
	Primary() T
	WithPrimary(T) P
}

// RGB is a three channel color pixel. Its primary component is R.
type RGB[T Number] struct {
	R, G, B T
}

func (p RGB[T]) Primary() T { return p.R }

func (p RGB[T]) WithPrimary(v T) RGB[T] {
	p.R = v
	return p
}

// Luminance returns the ITU-R BT.601 luma of p.
// It is derived, not a component, so it cannot be written back.
func (p RGB[T]) Luminance() float64 {
	return 0.299*float64(p.R) + 0.587*float64(p.G) + 0.114*float64(p.B)
}

// RGBA is a color pixel with alpha. Its primary component is R.
type RGBA[T Number] struct {
	R, G, B, A T
}

func (p RGBA[T]) Primary() T { return p.R }

func (p RGBA[T]) WithPrimary(v T) RGBA[T] {
	p.R = v
	return p
}

// Vector2 is a fixed length vector pixel, e.g. a 2D displacement.
// Component 0 is primary for all vector pixels.
type Vector2[T Number] [2]T

func (v Vector2[T]) Primary() T { return v[0] }

func (v Vector2[T]) WithPrimary(c T) Vector2[T] {
	v[0] = c
	return v
}

// Vector3 is a fixed length vector pixel, e.g. a 3D gradient.
type Vector3[T Number] [3]T

func (v Vector3[T]) Primary() T { return v[0] }

func (v Vector3[T]) WithPrimary(c T) Vector3[T] {
	v[0] = c
	return v
}

// Vector4 is a fixed length vector pixel.
type Vector4[T Number] [4]T

func (v Vector4[T]) Primary() T { return v[0] }

func (v Vector4[T]) WithPrimary(c T) Vector4[T] {
	v[0] = c
	return v
}

// SymmetricTensor3 stores the six unique entries of a symmetric 3x3 tensor
// in the order xx, xy, xz, yy, yz, zz, as used for diffusion tensor images.
// The primary component is xx.
type SymmetricTensor3[T Floats] [6]T

func (s SymmetricTensor3[T]) Primary() T { return s[0] }

func (s SymmetricTensor3[T]) WithPrimary(c T) SymmetricTensor3[T] {
	s[0] = c
	return s
}

// symmetricIndex maps a (row, col) pair to its slot in the packed storage.
var symmetricIndex = [3][3]int{
	{0, 1, 2},
	{1, 3, 4},
	{2, 4, 5},
}

// At returns the tensor entry at row i, column j. Both must be in [0, 3).
func (s SymmetricTensor3[T]) At(i, j int) T {
	return s[symmetricIndex[i][j]]
}

// Trace returns xx + yy + zz.
func (s SymmetricTensor3[T]) Trace() T {
	return s[0] + s[3] + s[5]
}
