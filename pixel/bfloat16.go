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

// BFloat16 is the upper half of a float32: same exponent range, 7 mantissa
// bits. It keeps float32's dynamic range at about 2.4 decimal digits.
type BFloat16 uint16

// BFloat16 bit patterns of interest.
const (
	BFloat16Zero BFloat16 = 0x0000
	BFloat16One  BFloat16 = 0x3F80
	BFloat16Inf  BFloat16 = 0x7F80
	BFloat16NaN  BFloat16 = 0x7FC0
)

// BFloat16FromFloat32 rounds f to the nearest bfloat16, ties to even.
// NaNs stay quiet NaNs with their sign.
func BFloat16FromFloat32(f float32) BFloat16 {
	b := math.Float32bits(f)
	if b&0x7FFFFFFF > 0x7F800000 {
		return BFloat16(b>>16 | 0x0040)
	}
	b += 0x7FFF + (b>>16)&1
	return BFloat16(b >> 16)
}

// Float32 widens b exactly.
func (b BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// IsNaN reports whether b is a NaN.
func (b BFloat16) IsNaN() bool {
	return b&0x7F80 == 0x7F80 && b&0x7F != 0
}
