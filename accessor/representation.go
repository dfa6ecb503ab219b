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

import (
	"math"

	"github.com/ajroetker/go-regioniter/pixel"
)

// Cast converts between numeric storage and external types with Go
// conversion rules. Widening casts are lossless; narrowing ones truncate.
type Cast[S, P pixel.Number] struct{}

func (Cast[S, P]) ToExternal(s S) P { return P(s) }
func (Cast[S, P]) ToStored(p P) S   { return S(p) }

// Half stores float32 pixels as IEEE binary16.
type Half struct{}

func (Half) ToExternal(s pixel.Float16) float32 { return s.Float32() }
func (Half) ToStored(p float32) pixel.Float16   { return pixel.Float16FromFloat32(p) }

// BHalf stores float32 pixels as bfloat16.
type BHalf struct{}

func (BHalf) ToExternal(s pixel.BFloat16) float32 { return s.Float32() }
func (BHalf) ToStored(p float32) pixel.BFloat16   { return pixel.BFloat16FromFloat32(p) }

// Quantized8 stores float32 pixels as uint8 codes:
//
//	external = float32(code)*Scale + Shift
//
// Storing rounds to the nearest code and saturates to [0, 255]. NaN and a
// zero Scale store code 0.
type Quantized8 struct {
	Scale float32
	Shift float32
}

func (q Quantized8) ToExternal(s uint8) float32 {
	return float32(s)*q.Scale + q.Shift
}

func (q Quantized8) ToStored(p float32) uint8 {
	if q.Scale == 0 {
		return 0
	}
	code := math.Round(float64((p - q.Shift) / q.Scale))
	switch {
	case math.IsNaN(code), code <= 0:
		return 0
	case code >= 255:
		return 255
	}
	return uint8(code)
}

// PackedRGBA8 stores an 8-bit RGBA pixel in one uint32, R in the low byte
// and A in the high byte. The packing is lossless.
type PackedRGBA8 struct{}

func (PackedRGBA8) ToExternal(s uint32) pixel.RGBA[uint8] {
	return pixel.RGBA[uint8]{
		R: uint8(s),
		G: uint8(s >> 8),
		B: uint8(s >> 16),
		A: uint8(s >> 24),
	}
}

func (PackedRGBA8) ToStored(p pixel.RGBA[uint8]) uint32 {
	return uint32(p.R) | uint32(p.G)<<8 | uint32(p.B)<<16 | uint32(p.A)<<24
}

// PackedRGB565 stores an 8-bit RGB pixel in 16 bits: 5 bits red (high),
// 6 bits green, 5 bits blue (low). Decoding replicates the high bits into
// the low ones, so 0 and 255 are exact and other values land within one
// quantization step (8 for red and blue, 4 for green).
type PackedRGB565 struct{}

func (PackedRGB565) ToExternal(s uint16) pixel.RGB[uint8] {
	r := uint8(s>>11) & 0x1F
	g := uint8(s>>5) & 0x3F
	b := uint8(s) & 0x1F
	return pixel.RGB[uint8]{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
	}
}

func (PackedRGB565) ToStored(p pixel.RGB[uint8]) uint16 {
	return uint16(p.R>>3)<<11 | uint16(p.G>>2)<<5 | uint16(p.B>>3)
}
