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
	"testing"

	"github.com/ajroetker/go-regioniter/pixel"
	"github.com/stretchr/testify/assert"
)

func TestIdentityRoundTrip(t *testing.T) {
	acc := ScalarOnly[float64, float64](Identity[float64]{})
	for _, v := range []float64{0, -1.5, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		var s float64
		acc.Set(&s, v)
		if got := acc.Get(s); got != v {
			t.Errorf("Set(%v); Get(): got %v", v, got)
		}
	}
}

func TestCastRoundTrip(t *testing.T) {
	acc := Compose[int16, float64, float64](Cast[int16, float64]{}, Identity[float64]{})
	for _, v := range []float64{-32768, -1, 0, 1, 32767} {
		var s int16
		acc.Set(&s, v)
		if got := acc.Get(s); got != v {
			t.Errorf("Cast int16: Set(%v); Get(): got %v", v, got)
		}
	}

	// Narrowing to uint8 truncates the fraction.
	narrow := Compose[uint8, float32, float32](Cast[uint8, float32]{}, Identity[float32]{})
	var s uint8
	narrow.Set(&s, 7.9)
	if got := narrow.Get(s); got != 7 {
		t.Errorf("Cast uint8: Set(7.9); Get(): got %v, want 7", got)
	}
}

func TestHalfIsLossy(t *testing.T) {
	acc := Compose[pixel.Float16, float32, float32](Half{}, Identity[float32]{})

	var s pixel.Float16
	acc.Set(&s, 1.5)
	assert.Equal(t, float32(1.5), acc.Get(s), "1.5 is exact in binary16")

	acc.Set(&s, 0.1)
	got := acc.Get(s)
	assert.NotEqual(t, float32(0.1), got)
	assert.InDelta(t, 0.1, got, 0.1*pixel.Float16Epsilon)

	acc.Set(&s, 1e6)
	assert.True(t, math.IsInf(float64(acc.Get(s)), 1), "values beyond 65504 saturate to +Inf")
}

func TestBHalfIsLossy(t *testing.T) {
	acc := Compose[pixel.BFloat16, float32, float32](BHalf{}, Identity[float32]{})

	var s pixel.BFloat16
	acc.Set(&s, 3e38)
	assert.InEpsilon(t, 3e38, acc.Get(s), 1.0/128)

	acc.Set(&s, 1.001)
	assert.Equal(t, float32(1), acc.Get(s))
}

func TestQuantized8(t *testing.T) {
	q := Quantized8{Scale: 0.5, Shift: -10}

	tests := []struct {
		name string
		in   float32
		code uint8
	}{
		{"Exact", -5, 10},
		{"RoundsToNearest", -4.8, 10},
		{"SaturatesLow", -100, 0},
		{"SaturatesHigh", 1000, 255},
		{"NaN", float32(math.NaN()), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := q.ToStored(tt.in); got != tt.code {
				t.Errorf("ToStored(%v): got %d, want %d", tt.in, got, tt.code)
			}
		})
	}

	if got := q.ToExternal(255); got != 117.5 {
		t.Errorf("ToExternal(255): got %v, want 117.5", got)
	}
	if got := (Quantized8{}).ToStored(3); got != 0 {
		t.Errorf("zero scale: got %d, want 0", got)
	}

	acc := Compose[uint8, float32, float32](q, Identity[float32]{})
	var s uint8
	for v := float32(-10); v <= 117.5; v += 0.25 {
		acc.Set(&s, v)
		if got := acc.Get(s); math.Abs(float64(got-v)) > 0.25 {
			t.Fatalf("Set(%v); Get(): got %v, outside half a step", v, got)
		}
	}
}

func TestPackedRGBA8(t *testing.T) {
	rep := PackedRGBA8{}
	p := pixel.RGBA[uint8]{R: 0x11, G: 0x22, B: 0x33, A: 0x44}
	if got := rep.ToStored(p); got != 0x44332211 {
		t.Errorf("ToStored: got 0x%08x, want 0x44332211", got)
	}
	if got := rep.ToExternal(rep.ToStored(p)); got != p {
		t.Errorf("round trip: got %+v, want %+v", got, p)
	}
}

func TestPackedRGB565(t *testing.T) {
	rep := PackedRGB565{}
	for _, p := range []pixel.RGB[uint8]{{}, {R: 255, G: 255, B: 255}} {
		if got := rep.ToExternal(rep.ToStored(p)); got != p {
			t.Errorf("round trip of %+v: got %+v", p, got)
		}
	}

	p := pixel.RGB[uint8]{R: 100, G: 150, B: 200}
	got := rep.ToExternal(rep.ToStored(p))
	assert.InDelta(t, p.R, got.R, 8)
	assert.InDelta(t, p.G, got.G, 4)
	assert.InDelta(t, p.B, got.B, 8)

	// Decoding then encoding is stable.
	s := rep.ToStored(p)
	if again := rep.ToStored(rep.ToExternal(s)); again != s {
		t.Errorf("re-encode: got 0x%04x, want 0x%04x", again, s)
	}
}

func TestCompositeNonInterference(t *testing.T) {
	t.Run("RGBA", func(t *testing.T) {
		acc := Compose[uint32, pixel.RGBA[uint8], uint8](PackedRGBA8{}, Primary[pixel.RGBA[uint8], uint8]{})
		s := PackedRGBA8{}.ToStored(pixel.RGBA[uint8]{R: 1, G: 2, B: 3, A: 4})
		acc.Set(&s, 200)
		assert.Equal(t, uint8(200), acc.Get(s))
		assert.Equal(t, pixel.RGBA[uint8]{R: 200, G: 2, B: 3, A: 4}, acc.Pixel(s))
	})

	t.Run("RGB565", func(t *testing.T) {
		acc := Compose[uint16, pixel.RGB[uint8], uint8](PackedRGB565{}, Primary[pixel.RGB[uint8], uint8]{})
		s := PackedRGB565{}.ToStored(pixel.RGB[uint8]{R: 8, G: 132, B: 66})
		before := acc.Pixel(s)
		acc.Set(&s, 255)
		after := acc.Pixel(s)
		assert.Equal(t, uint8(255), after.R)
		assert.Equal(t, before.G, after.G)
		assert.Equal(t, before.B, after.B)
	})

	t.Run("Vector3", func(t *testing.T) {
		acc := ScalarOnly[pixel.Vector3[float64], float64](Primary[pixel.Vector3[float64], float64]{})
		s := pixel.Vector3[float64]{1, 2, 3}
		acc.Set(&s, -7)
		assert.Equal(t, pixel.Vector3[float64]{-7, 2, 3}, s)
	})

	t.Run("Tensor", func(t *testing.T) {
		acc := ScalarOnly[pixel.SymmetricTensor3[float32], float32](Primary[pixel.SymmetricTensor3[float32], float32]{})
		s := pixel.SymmetricTensor3[float32]{1, 2, 3, 4, 5, 6}
		acc.Set(&s, 0)
		assert.Equal(t, pixel.SymmetricTensor3[float32]{0, 2, 3, 4, 5, 6}, s)
		assert.Equal(t, float32(0), acc.Get(s))
	})

	t.Run("Complex", func(t *testing.T) {
		acc := ScalarOnly[complex128, float64](Real128{})
		s := complex(1, 2)
		acc.Set(&s, 5)
		assert.Equal(t, complex(5, 2), s)
		assert.Equal(t, 5.0, acc.Get(s))

		acc64 := ScalarOnly[complex64, float32](Real64{})
		var c complex64 = complex(1, -3)
		acc64.Set(&c, 0.5)
		assert.Equal(t, complex64(complex(0.5, -3)), c)
	})
}
