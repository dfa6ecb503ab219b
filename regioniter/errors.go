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

	"github.com/ajroetker/go-regioniter/image"
)

var (
	ErrNilImage    = errors.New("regioniter: nil image")
	ErrUnbound     = errors.New("regioniter: iterator is not bound to an image")
	ErrSentinel    = errors.New("regioniter: iterator at sentinel position")
	ErrIncongruent = errors.New("regioniter: regions differ in size")

	// ErrRegionOutOfBounds is returned by New when the region does not lie
	// inside the image.
	ErrRegionOutOfBounds = image.ErrRegionOutOfBounds
)
