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

// Package accessor separates how a pixel is stored from how algorithms see
// it.
//
// Two cooperating pieces are composed into an Adapter:
//
//   - a Representation converts a stored element S to the external pixel P
//     and back (identity, half-precision, quantized or packed storage);
//   - a Scalar extracts the primary scalar V of a pixel P and injects a new
//     one (identity for scalar pixels, component selection for vectors,
//     colors, tensors and complex numbers).
//
// Everything is resolved through generic instantiation; no accessor is
// dispatched dynamically.
//
//	// RGB565 packed storage, red channel exposed as a uint8 scalar.
//	acc := accessor.Compose[uint16, pixel.RGB[uint8], uint8](
//	    accessor.PackedRGB565{}, accessor.Primary[pixel.RGB[uint8], uint8]{})
//	var stored uint16
//	acc.Set(&stored, 255)
//	acc.Get(stored) // 255
//
// # Lossy Representations
//
// Half, BHalf, Quantized8, PackedRGB565 and narrowing Cast conversions
// quantize on the way back to storage. Identity, PackedRGBA8 and widening
// Cast conversions round-trip exactly.
package accessor
