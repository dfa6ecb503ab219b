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

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-regioniter/image"
	"github.com/ajroetker/go-regioniter/region"
	"github.com/ajroetker/go-regioniter/regioniter"
)

var errDimension = errors.New("dimension must be between 1 and 4")

type walkOptions struct {
	size    []int
	index   []int
	extent  []int
	reverse bool
	limit   int
}

func newWalkCmd() *cobra.Command {
	opts := &walkOptions{}
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Print the coordinates and buffer offsets visited in a region",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWalk(cmd.OutOrStdout(), opts)
		},
	}
	opts.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func (o *walkOptions) register(flags *pflag.FlagSet) {
	flags.IntSliceVar(&o.size, "size", nil, "buffer extent per axis, axis 0 first (required)")
	flags.IntSliceVar(&o.index, "index", nil, "region origin (default: origin of the buffer)")
	flags.IntSliceVar(&o.extent, "extent", nil, "region extent (default: rest of the buffer)")
	flags.BoolVar(&o.reverse, "reverse", false, "walk from the last pixel back to the first")
	flags.IntVar(&o.limit, "limit", 0, "stop after this many pixels (0: no limit)")
}

// normalize fills in defaults for the region flags.
func (o *walkOptions) normalize() error {
	dim := len(o.size)
	if dim < 1 || dim > 4 {
		return fmt.Errorf("%w: got %d", errDimension, dim)
	}
	if o.index == nil {
		o.index = make([]int, dim)
	}
	if o.extent == nil {
		o.extent = lo.Map(o.size, func(s, k int) int {
			if k < len(o.index) {
				return s - o.index[k]
			}
			return s
		})
	}
	if len(o.index) != dim || len(o.extent) != dim {
		return fmt.Errorf("--index and --extent need %d values, got %d and %d",
			dim, len(o.index), len(o.extent))
	}
	return nil
}

func runWalk(out io.Writer, opts *walkOptions) error {
	if err := opts.normalize(); err != nil {
		return err
	}
	switch len(opts.size) {
	case 1:
		return walk[region.Index1](out, opts)
	case 2:
		return walk[region.Index2](out, opts)
	case 3:
		return walk[region.Index3](out, opts)
	default:
		return walk[region.Index4](out, opts)
	}
}

func walk[C region.Coord](out io.Writer, opts *walkOptions) error {
	size, err := region.FromSlice[C](opts.size)
	if err != nil {
		return err
	}
	index, err := region.FromSlice[C](opts.index)
	if err != nil {
		return err
	}
	extent, err := region.FromSlice[C](opts.extent)
	if err != nil {
		return err
	}

	img, err := image.New[struct{}](size)
	if err != nil {
		return err
	}
	r, err := region.Make(index, extent)
	if err != nil {
		return err
	}
	it, err := regioniter.New(img, r)
	if err != nil {
		return err
	}
	slog.Debug("walking region",
		"buffer", region.Format(size),
		"strides", region.Format(img.Strides()),
		"region", r.String(),
		"pixels", r.NumberOfPixels(),
		"reverse", opts.reverse)

	seq := it.All()
	if opts.reverse {
		it.GoToLast()
		seq = it.Backward()
	}
	n := 0
	for idx := range seq {
		if opts.limit > 0 && n == opts.limit {
			slog.Debug("limit reached", "limit", opts.limit)
			break
		}
		if _, err := fmt.Fprintf(out, "(%s)\t%d\n", region.Format(idx), it.Offset()); err != nil {
			return err
		}
		n++
	}
	slog.Debug("walk done", "visited", n)
	return nil
}
