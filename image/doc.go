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

// Package image provides the dense N-dimensional buffer walked by region
// iterators.
//
// An Image stores its elements contiguously in row-major order with axis 0
// varying fastest. The offset table (Strides) gives the distance in
// elements between neighbors along each axis, so the element at index i
// lives at
//
//	sum(i[k] * Strides()[k])
//
// # Usage Example
//
//	img, _ := image.New[float32](region.Index2{640, 480})
//	img.SetAt(region.Index2{10, 20}, 1.5)
//	img.At(region.Index2{10, 20}) // 1.5
//
// # Lifetime
//
// Iterators hold a non-owning view of the image. The image never
// reallocates its storage after construction; callers of Wrap must keep
// the slice they handed over alive and must not replace its backing array
// while iterators are in use.
package image
