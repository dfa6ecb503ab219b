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

package pixel

import (
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sys/cpu"
)

// Features describes the half-precision capabilities of the running CPU.
// The conversions in this package are portable Go; the report tells callers
// whether a hardware path would be available to them.
type Features struct {
	Arch string

	// F16C: float16 <-> float32 conversions on x86 (Haswell+).
	F16C bool

	// AVX512BF16: bfloat16 dot products on x86 (Cooper Lake+, Zen 4+).
	AVX512BF16 bool

	// ARMFP16: native float16 arithmetic on arm64 (FPHP and ASIMDHP).
	ARMFP16 bool
}

// NoHWCapsEnv reports whether REGIONITER_NO_HWCAPS is set. When it is,
// DetectFeatures reports a CPU without any half-precision support.
func NoHWCapsEnv() bool {
	val := os.Getenv("REGIONITER_NO_HWCAPS")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

var detected = detectFeatures(NoHWCapsEnv())

// DetectFeatures returns the capabilities detected at init.
func DetectFeatures() Features {
	return detected
}

func detectFeatures(software bool) Features {
	f := Features{Arch: runtime.GOARCH}
	if software {
		return f
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		// F16C ships on every FMA capable x86 core.
		f.F16C = cpu.X86.HasAVX && cpu.X86.HasFMA
		f.AVX512BF16 = cpu.X86.HasAVX512 && cpu.X86.HasAVX512BF16
	case "arm64":
		f.ARMFP16 = cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP
	}
	return f
}

// HalfPrecision reports whether any hardware half-precision path exists.
func (f Features) HalfPrecision() bool {
	return f.F16C || f.AVX512BF16 || f.ARMFP16
}
