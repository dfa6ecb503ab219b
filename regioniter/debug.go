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
	"os"
	"strconv"
)

// debugChecks is the default for Iterator.checks, set once from the
// environment.
var debugChecks = DebugEnv()

// DebugEnv reports whether REGIONITER_DEBUG is set. Any non-empty value
// that does not parse as false enables precondition checks on every new
// iterator.
func DebugEnv() bool {
	val := os.Getenv("REGIONITER_DEBUG")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
