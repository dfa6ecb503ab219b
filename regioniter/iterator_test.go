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

package regioniter

import (
	"errors"
	"math"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-regioniter/accessor"
	"github.com/ajroetker/go-regioniter/image"
	"github.com/ajroetker/go-regioniter/region"
)

// walk collects the coordinates visited from the current position to end.
func walk[S any, C region.Coord](it *Iterator[S, C]) []C {
	var got []C
	for ; !it.IsAtEnd(); it.Next() {
		got = append(got, it.Index())
	}
	return got
}

// rowMajor lists the coordinates of r by decomposing a pixel counter in
// mixed radix, axis 0 fastest.
func rowMajor[C region.Coord](r region.Region[C]) []C {
	n := r.NumberOfPixels()
	out := make([]C, 0, n)
	for i := 0; i < n; i++ {
		var idx C
		rest := i
		for k := 0; k < len(idx); k++ {
			idx[k] = r.Index[k] + rest%r.Size[k]
			rest /= r.Size[k]
		}
		out = append(out, idx)
	}
	return out
}

func TestIterator_FullBuffer2x3(t *testing.T) {
	img, err := image.New[int](region.Index2{2, 3})
	require.NoError(t, err)
	it, err := NewFull(img)
	require.NoError(t, err)

	want := []region.Index2{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}
	if diff := cmp.Diff(want, walk(it)); diff != "" {
		t.Errorf("enumeration order (-want +got):\n%s", diff)
	}
}

func TestIterator_SinglePixelSubRegion(t *testing.T) {
	img, _ := image.New[float32](region.Index2{3, 3})
	r := region.Region[region.Index2]{Index: region.Index2{1, 1}, Size: region.Index2{1, 1}}
	it, err := New(img, r)
	require.NoError(t, err)

	assert.False(t, it.IsAtEnd())
	assert.Equal(t, region.Index2{1, 1}, it.Index())
	assert.Equal(t, 4, it.Offset())

	it.Next()
	assert.True(t, it.IsAtEnd())
}

func TestIterator_OffsetsMatchImage(t *testing.T) {
	img, _ := image.New[int](region.Index3{4, 3, 5})
	r := region.Region[region.Index3]{Index: region.Index3{1, 0, 2}, Size: region.Index3{2, 3, 2}}
	it, err := New(img, r)
	require.NoError(t, err)

	n := 0
	for ; !it.IsAtEnd(); it.Next() {
		if got, want := it.Offset(), img.ComputeOffset(it.Index()); got != want {
			t.Fatalf("Offset at %v: got %d, want %d", it.Index(), got, want)
		}
		if got := img.ComputeIndex(it.Offset()); got != it.Index() {
			t.Fatalf("ComputeIndex(Offset) at %v: got %v", it.Index(), got)
		}
		n++
	}
	if n != r.NumberOfPixels() {
		t.Errorf("visited %d pixels, want %d", n, r.NumberOfPixels())
	}
}

func TestIterator_SubRegionOrder(t *testing.T) {
	img, _ := image.New[uint8](region.Index3{5, 4, 3})
	r := region.Region[region.Index3]{Index: region.Index3{2, 1, 1}, Size: region.Index3{3, 2, 2}}
	it, err := New(img, r)
	require.NoError(t, err)

	if diff := cmp.Diff(rowMajor(r), walk(it)); diff != "" {
		t.Errorf("enumeration order (-want +got):\n%s", diff)
	}
}

// checkStepCounts verifies the step-count properties of a random region of
// a random image of dimension len(C).
func checkStepCounts[C region.Coord](t *testing.T) {
	t.Helper()
	var size, index, extent C
	for k := 0; k < len(size); k++ {
		size[k] = randomdata.Number(1, 7)
		index[k] = randomdata.Number(0, size[k])
		extent[k] = randomdata.Number(1, size[k]-index[k]+1)
	}
	img, err := image.New[int32](size)
	require.NoError(t, err)
	r, err := region.Make(index, extent)
	require.NoError(t, err)
	it, err := New(img, r)
	require.NoError(t, err)

	first := it.Index()
	n := r.NumberOfPixels()
	for i := 0; i < n; i++ {
		require.False(t, it.IsAtEnd(), "reached end after %d of %d steps in %s", i, n, r)
		require.Equal(t, img.ComputeOffset(it.Index()), it.Offset())
		it.Next()
	}
	require.True(t, it.IsAtEnd(), "not at end after %d steps in %s", n, r)

	it.Prev()
	last := r.End()
	for k := 0; k < len(last); k++ {
		last[k]--
	}
	require.Equal(t, last, it.Index(), "Prev from end in %s", r)
	for i := 1; i < n; i++ {
		it.Prev()
		require.False(t, it.IsAtBegin())
		require.Equal(t, img.ComputeOffset(it.Index()), it.Offset())
	}
	require.Equal(t, first, it.Index(), "retreating %d steps from end in %s", n, r)

	it.Prev()
	require.True(t, it.IsAtBegin())
	it.Next()
	require.Equal(t, first, it.Index(), "Next from before-begin in %s", r)
}

func TestIterator_StepCounts(t *testing.T) {
	for range 25 {
		t.Run("1D", checkStepCounts[region.Index1])
		t.Run("2D", checkStepCounts[region.Index2])
		t.Run("3D", checkStepCounts[region.Index3])
		t.Run("4D", checkStepCounts[region.Index4])
	}
}

func TestIterator_DeterministicOrder(t *testing.T) {
	img, _ := image.New[float64](region.Index4{3, 2, 2, 3})
	r := region.Region[region.Index4]{Index: region.Index4{1, 0, 1, 0}, Size: region.Index4{2, 2, 1, 3}}

	a, err := New(img, r)
	require.NoError(t, err)
	b, err := New(img, r)
	require.NoError(t, err)

	first := walk(a)
	if diff := cmp.Diff(first, walk(b)); diff != "" {
		t.Errorf("independent iterators disagree (-a +b):\n%s", diff)
	}
	a.GoToBegin()
	if diff := cmp.Diff(first, walk(a)); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(rowMajor(r), first); diff != "" {
		t.Errorf("order is not row-major (-want +got):\n%s", diff)
	}
}

func TestIterator_ReverseWalk(t *testing.T) {
	img, _ := image.New[int](region.Index2{3, 2})
	it, _ := NewFull(img)

	var got []region.Index2
	for it.GoToLast(); !it.IsAtBegin(); it.Prev() {
		got = append(got, it.Index())
	}
	want := []region.Index2{{2, 1}, {1, 1}, {0, 1}, {2, 0}, {1, 0}, {0, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reverse order (-want +got):\n%s", diff)
	}

	it.GoToBeforeBegin()
	assert.True(t, it.IsAtBegin())
	it.Next()
	assert.Equal(t, region.Index2{0, 0}, it.Index())

	it.GoToEnd()
	assert.True(t, it.IsAtEnd())
	it.Prev()
	assert.Equal(t, region.Index2{2, 1}, it.Index())
}

func TestIterator_OneDimensional(t *testing.T) {
	img, _ := image.Wrap([]int{10, 11, 12, 13, 14}, region.Index1{5})
	r := region.Region[region.Index1]{Index: region.Index1{1}, Size: region.Index1{3}}
	it, err := New(img, r)
	require.NoError(t, err)

	var got []int
	for ; !it.IsAtEnd(); it.Next() {
		got = append(got, it.Raw())
	}
	assert.Equal(t, []int{11, 12, 13}, got)

	it.GoToBeforeBegin()
	assert.True(t, it.IsAtBegin())
	it.Next()
	assert.Equal(t, 11, it.Raw())
}

func TestIterator_SetIndex(t *testing.T) {
	img, _ := image.New[int](region.Index3{3, 3, 3})
	it, _ := NewFull(img)

	it.SetIndex(region.Index3{2, 2, 1})
	assert.Equal(t, img.ComputeOffset(region.Index3{2, 2, 1}), it.Offset())
	it.Next()
	assert.Equal(t, region.Index3{0, 0, 2}, it.Index())
	assert.Equal(t, img.ComputeOffset(region.Index3{0, 0, 2}), it.Offset())
}

func TestIterator_EmptyRegion(t *testing.T) {
	img, _ := image.New[int](region.Index2{3, 3})
	r := region.Region[region.Index2]{Index: region.Index2{1, 1}, Size: region.Index2{0, 2}}
	it, err := New(img, r)
	require.NoError(t, err)

	assert.True(t, it.IsAtEnd())
	assert.True(t, it.IsAtBegin())
	assert.Empty(t, walk(it))

	it.GoToLast()
	assert.True(t, it.IsAtBegin())
	n := 0
	for range it.All() {
		n++
	}
	assert.Zero(t, n)
}

func TestNew_Errors(t *testing.T) {
	_, err := New[int, region.Index2](nil, region.Region[region.Index2]{})
	assert.ErrorIs(t, err, ErrNilImage)
	_, err = NewFull[int, region.Index2](nil)
	assert.ErrorIs(t, err, ErrNilImage)

	img, _ := image.New[int](region.Index2{3, 3})
	_, err = New(img, region.Region[region.Index2]{Index: region.Index2{2, 2}, Size: region.Index2{2, 2}})
	assert.ErrorIs(t, err, ErrRegionOutOfBounds)
	_, err = New(img, region.Region[region.Index2]{Index: region.Index2{-1, 0}, Size: region.Index2{1, 1}})
	assert.ErrorIs(t, err, ErrRegionOutOfBounds)
	// The end of this region overflows int.
	_, err = New(img, region.Region[region.Index2]{Index: region.Index2{2, 0}, Size: region.Index2{math.MaxInt, 1}})
	assert.ErrorIs(t, err, ErrRegionOutOfBounds)
}

// sentinelPanic runs fn and reports whether it panicked with ErrSentinel.
func sentinelPanic(fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			err, isErr := r.(error)
			ok = isErr && errors.Is(err, ErrSentinel)
		}
	}()
	fn()
	return false
}

func TestIterator_Checks(t *testing.T) {
	img, _ := image.New[int](region.Index2{2, 2})
	it, _ := NewFull(img)
	it.EnableChecks()
	require.True(t, it.Checked())

	for ; !it.IsAtEnd(); it.Next() {
		*it.Value() = 1
	}
	assert.True(t, sentinelPanic(it.Next), "Next at end")
	assert.True(t, sentinelPanic(func() { it.Value() }), "Value at end")
	assert.True(t, sentinelPanic(func() { it.SetRaw(3) }), "SetRaw at end")

	it.GoToBeforeBegin()
	assert.True(t, sentinelPanic(it.Prev), "Prev before begin")
	assert.True(t, sentinelPanic(func() { it.Raw() }), "Raw before begin")
	assert.True(t, sentinelPanic(func() { it.SetIndex(region.Index2{5, 0}) }), "SetIndex outside")

	it.Next()
	assert.False(t, sentinelPanic(func() { it.Raw() }), "Raw on first pixel")

	empty, _ := New(img, region.Region[region.Index2]{})
	empty.EnableChecks()
	assert.True(t, sentinelPanic(empty.Next), "Next on empty region")
}

func TestIterator_ChecksAreCopiedByNarrowing(t *testing.T) {
	img, _ := image.New[float32](region.Index1{2})
	it, _ := NewFull(img)
	it.EnableChecks()
	it.GoToEnd()

	sit, err := NewScalar[float32](it, accessor.ScalarOnly[float32, float32](accessor.Identity[float32]{}))
	require.NoError(t, err)
	assert.True(t, sit.Checked())
	assert.True(t, sentinelPanic(func() { sit.Get() }))
	assert.True(t, sentinelPanic(func() { sit.Set(1) }))
}
