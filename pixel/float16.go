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

import "math"

// Float16 is an IEEE 754 binary16 value used as a compressed storage
// element: 1 sign bit, 5 exponent bits (bias 15), 10 mantissa bits.
// Finite range is ±65504 with about 3.3 decimal digits of precision, so
// storing a float32 in it is lossy.
type Float16 uint16

// Float16 bit patterns of interest.
const (
	Float16Zero    Float16 = 0x0000
	Float16One     Float16 = 0x3C00
	Float16Max     Float16 = 0x7BFF // 65504
	Float16Inf     Float16 = 0x7C00
	Float16NegInf  Float16 = 0xFC00
	Float16NaN     Float16 = 0x7E00
	Float16Epsilon         = 0.0009765625 // 2^-10, spacing of values in [1, 2)
)

// Float16FromFloat32 rounds f to the nearest binary16 value, ties to even.
// Values beyond the finite range become infinities and values below half of
// the smallest subnormal flush to signed zero.
func Float16FromFloat32(f float32) Float16 {
	b := math.Float32bits(f)
	sign := uint32(b>>16) & 0x8000
	exp := int32(b>>23) & 0xFF
	mant := b & 0x7FFFFF

	if exp == 0xFF {
		if mant != 0 {
			return Float16(sign | 0x7E00 | mant>>13)
		}
		return Float16(sign | 0x7C00)
	}

	e := exp - 127 + 15
	switch {
	case e >= 0x1F:
		return Float16(sign | 0x7C00)
	case e <= 0:
		if e < -10 {
			return Float16(sign)
		}
		m := mant | 0x800000
		shift := uint32(14 - e)
		r := m >> shift
		rem := m & (1<<shift - 1)
		half := uint32(1) << (shift - 1)
		if rem > half || (rem == half && r&1 == 1) {
			r++
		}
		return Float16(sign | r)
	}

	r := uint32(e)<<10 | mant>>13
	rem := mant & 0x1FFF
	if rem > 0x1000 || (rem == 0x1000 && r&1 == 1) {
		// May carry into the exponent, up to and including infinity.
		r++
	}
	return Float16(sign | r)
}

// Float32 widens h exactly.
func (h Float16) Float32() float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		e := uint32(127 - 15 + 1)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		return math.Float32frombits(sign | e<<23 | (mant&0x3FF)<<13)
	case 0x1F:
		return math.Float32frombits(sign | 0x7F800000 | mant<<13)
	}
	return math.Float32frombits(sign | (exp+127-15)<<23 | mant<<13)
}

// IsNaN reports whether h is a NaN.
func (h Float16) IsNaN() bool {
	return h&0x7C00 == 0x7C00 && h&0x3FF != 0
}

// IsInf reports whether h is an infinity of either sign.
func (h Float16) IsInf() bool {
	return h&0x7FFF == 0x7C00
}
