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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-regioniter/pixel"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print half-precision capabilities of this CPU",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := pixel.DetectFeatures()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "arch:         %s\n", f.Arch)
			fmt.Fprintf(out, "f16c:         %v\n", f.F16C)
			fmt.Fprintf(out, "avx512-bf16:  %v\n", f.AVX512BF16)
			fmt.Fprintf(out, "arm-fp16:     %v\n", f.ARMFP16)
			if pixel.NoHWCapsEnv() {
				fmt.Fprintln(out, "hardware detection disabled by REGIONITER_NO_HWCAPS")
			}
			return nil
		},
	}
}
