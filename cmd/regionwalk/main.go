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

// Command regionwalk prints the order in which a region iterator visits the
// pixels of a region, and the half-precision features of the host CPU.
//
// Usage:
//
//	regionwalk walk --size 2,3                          # whole 2x3 buffer
//	regionwalk walk --size 3,3 --index 1,1 --extent 1,1 # one pixel
//	regionwalk walk --size 4,4,2 --extent 2,2,2 --reverse
//	regionwalk info
//
// Axis 0 is the fastest varying axis. Buffers of one to four dimensions are
// supported.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "regionwalk",
		Short:        "Inspect N-dimensional region iteration order",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newWalkCmd(), newInfoCmd())
	return root
}
