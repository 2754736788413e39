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

//go:build amd64

package lanes

import "golang.org/x/sys/cpu"

// The amd64 ladder, widest first: AVX-512 (if the rung is compiled in
// and the CPU has the F and VL subsets), then AVX2 with FMA, then
// scalar. The probe only answers whether the CPU is capable; a width
// missing from the build is never discovered as a runtime failure.
func init() {
	if noSimdEnv() {
		preferred = WidthScalar
		return
	}

	switch {
	case avx512Enabled && cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL:
		preferred = Width512
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		preferred = Width256
	default:
		preferred = WidthScalar
	}
}
