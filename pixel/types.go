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

// Package pixel defines the element types a region iterator can walk:
// numeric constraints, compressed half-precision storage scalars and
// composite pixels that declare a primary scalar component.
//
// A composite pixel exposes one canonical scalar for algorithms that only
// understand scalars:
//
//	p := pixel.RGB[uint8]{R: 10, G: 20, B: 30}
//	p.Primary()        // 10
//	p.WithPrimary(99)  // {99 20 30}, G and B untouched
package pixel

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is a constraint for real scalar pixel components.
type Number interface {
	Floats | Integers
}

// Complex is a constraint for complex pixel types. Their primary scalar is
// the real part.
type Complex interface {
	~complex64 | ~complex128
}
