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

//go:build wasm

package lanes

// The WASM runtime verifies simd128 support when it loads the module,
// so there is no runtime probe; the width is fixed at configuration
// time for this family.
func init() {
	if noSimdEnv() {
		preferred = WidthScalar
		return
	}
	preferred = WidthWasm128
}
