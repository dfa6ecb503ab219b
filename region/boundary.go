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

package region

// Boundary selects how coordinates outside a region are folded back in.
type Boundary int

const (
	// BoundaryClamp repeats the edge pixels (nearest-neighbor extrapolation).
	BoundaryClamp Boundary = iota

	// BoundaryMirror reflects at the edges, repeating the edge pixel.
	BoundaryMirror

	// BoundaryWrap tiles the region periodically.
	BoundaryWrap
)

// String returns the policy name.
func (b Boundary) String() string {
	switch b {
	case BoundaryClamp:
		return "clamp"
	case BoundaryMirror:
		return "mirror"
	case BoundaryWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// Fold maps idx into r using the given policy. Axes already inside the
// region are left untouched. Folding into an empty region returns r.Index.
func (r Region[C]) Fold(idx C, b Boundary) C {
	if r.IsEmpty() {
		return r.Index
	}
	for k := 0; k < len(idx); k++ {
		rel := idx[k] - r.Index[k]
		if rel >= 0 && rel < r.Size[k] {
			continue
		}
		switch b {
		case BoundaryMirror:
			rel = Mirror(rel, r.Size[k])
		case BoundaryWrap:
			rel = Wrap(rel, r.Size[k])
		default:
			rel = Clamp(rel, r.Size[k])
		}
		idx[k] = r.Index[k] + rel
	}
	return idx
}

// Mirror returns the mirrored index for out-of-bounds coordinates.
// Given bounds [0, size), mirrors index to stay within bounds.
func Mirror(index, size int) int {
	if size <= 0 {
		return 0
	}
	if index < 0 {
		index = -index - 1
	}
	if index >= size {
		period := 2 * size
		index %= period
		if index >= size {
			index = period - index - 1
		}
	}
	return index
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if index < 0 || size <= 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// Wrap returns index wrapped to [0, size) using modulo.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index %= size
	if index < 0 {
		index += size
	}
	return index
}
