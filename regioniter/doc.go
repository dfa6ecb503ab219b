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

// Package regioniter walks rectangular regions of N-dimensional images.
//
// An Iterator enumerates every coordinate of a region in row-major order,
// axis 0 fastest, keeping a running linear offset into the image buffer.
// Each step adds one to the offset; when an axis overflows it is reset to
// the region start and the carry moves on to the next slower axis, like an
// odometer. A step costs O(1) amortized and O(D) only when the carry
// cascades through every axis.
//
//	it, err := regioniter.New(img, r)
//	if err != nil {
//	    return err
//	}
//	for ; !it.IsAtEnd(); it.Next() {
//	    *it.Value() += 1
//	}
//
// Two iterators over regions of the same size always visit positions in the
// same order, so congruent regions can be walked in lockstep (see Zip).
//
// # Pixel and Scalar Access
//
// An Iterator reads and writes stored elements. NewPixel narrows it to an
// iterator that converts each element to an external pixel type through an
// accessor.Representation, and NewScalar narrows it to one that exposes a
// single scalar through an accessor.Accessor. Narrowing copies the cursor;
// the new iterator starts exactly where the source was.
//
// # Sentinels and Checks
//
// IsAtEnd is true one step past the last pixel and IsAtBegin one step
// before the first. Stepping past a sentinel or dereferencing at one is a
// programming error and is not checked by default, which keeps every step
// a handful of integer operations. EnableChecks, or setting
// REGIONITER_DEBUG in the environment, turns these misuses into panics
// wrapping ErrSentinel at the cost of one branch per step.
//
// Iterators are not safe for concurrent use. Separate iterators may read
// the same image from different goroutines; concurrent writes to the same
// pixel must be serialized by the caller.
package regioniter
