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

import "github.com/ajroetker/go-regioniter/pixel"

// Primary exposes the designated primary component of a composite pixel.
type Primary[P pixel.Composite[P, V], V any] struct{}

func (Primary[P, V]) Scalar(p P) V { return p.Primary() }

func (Primary[P, V]) WithScalar(p P, v V) P { return p.WithPrimary(v) }

// Real64 exposes the real part of a complex64 pixel; the imaginary part is
// preserved on write.
type Real64 struct{}

func (Real64) Scalar(c complex64) float32 { return real(c) }

func (Real64) WithScalar(c complex64, v float32) complex64 { return complex(v, imag(c)) }

// Real128 is Real64 for complex128 pixels.
type Real128 struct{}

func (Real128) Scalar(c complex128) float64 { return real(c) }

func (Real128) WithScalar(c complex128, v float64) complex128 { return complex(v, imag(c)) }
