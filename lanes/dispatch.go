// Copyright 2026 go-lanes Authors
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

package lanes

import (
	"os"
	"strconv"
)

// Width identifies one vector width variant from the closed ladder.
type Width int

const (
	// WidthScalar is single-lane execution, valid on every CPU.
	WidthScalar Width = iota

	// WidthWasm128 is 128-bit WASM simd128 (four lanes).
	WidthWasm128

	// WidthNeon is 128-bit ARM NEON (four lanes).
	WidthNeon

	// Width256 is 256-bit AVX2 (eight lanes).
	Width256

	// Width512 is 512-bit AVX-512 (sixteen lanes).
	Width512
)

// String returns a human-readable name for the width.
func (w Width) String() string {
	switch w {
	case WidthScalar:
		return "scalar"
	case WidthWasm128:
		return "wasm128"
	case WidthNeon:
		return "neon"
	case Width256:
		return "avx2"
	case Width512:
		return "avx512"
	default:
		return "unknown"
	}
}

// LaneCount returns the number of float32 lanes processed per group at
// this width.
func (w Width) LaneCount() int {
	switch w {
	case Width512:
		return 16
	case Width256:
		return 8
	case WidthNeon, WidthWasm128:
		return 4
	default:
		return 1
	}
}

// preferred holds the width selected for this process. Set by init()
// in dispatch_*.go files. CPU features do not change during process
// lifetime, so caching the probe result is equivalent to re-probing
// per call.
var preferred Width

// Preferred returns the vector width the dispatcher selects on this
// build and CPU.
func Preferred() Width {
	return preferred
}

// noSimdEnv reports whether the LANES_NO_SIMD environment variable is
// set, which forces scalar execution regardless of CPU capabilities.
// Useful for testing and debugging.
func noSimdEnv() bool {
	val := os.Getenv("LANES_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Op is one kernel invocation that can run at any width from the closed
// ladder. Implementations hold their inputs (typically a SrcDest plus
// scalar parameters) and provide one instantiation of a single generic
// kernel body per width; no width-specific logic belongs in an Op.
//
// Exactly one Eval method runs per dispatch, and an Op value must not
// be reused after it has been dispatched.
type Op[O any] interface {
	// EvalScalar runs the kernel single-lane. Always valid.
	EvalScalar() O

	// Eval128 runs the kernel at four lanes (Vec4).
	Eval128() O

	// Eval256 runs the kernel at eight lanes (Vec8).
	Eval256() O

	// Eval512 runs the kernel at sixteen lanes (Vec16).
	Eval512() O
}

// Dispatch runs op at the preferred width for this build and CPU.
// Dispatch is the sole place that decides a given width is safe and
// profitable on the current CPU; it never fails, because the scalar
// fallback always completes.
func Dispatch[O any](op Op[O]) O {
	switch Preferred() {
	case Width512:
		return op.Eval512()
	case Width256:
		return op.Eval256()
	case WidthNeon, WidthWasm128:
		return op.Eval128()
	default:
		return op.EvalScalar()
	}
}
