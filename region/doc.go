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

// Package region provides the coordinate, extent and region value types
// shared by images and region iterators.
//
// The dimensionality of every type is the length of its coordinate array and
// is fixed when the generic types are instantiated:
//
//	r, err := region.Make(region.Index2{1, 1}, region.Index2{2, 3})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r.NumberOfPixels()) // 6
//
// Axis 0 is the fastest varying axis everywhere in this module.
//
// # Boundary Handling
//
// Coordinates outside a region can be folded back into it with one of the
// boundary policies:
//
//	Clamp(index, size)  - repeat edge pixels
//	Mirror(index, size) - reflect at boundaries
//	Wrap(index, size)   - tile/wrap around
package region
