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

//go:build !lanes_noavx512

package lanes

// avx512Enabled gates the 512-bit rung of the amd64 ladder at build
// time. Building with -tags lanes_noavx512 removes the rung from the
// ladder entirely; the runtime probe then never considers it.
const avx512Enabled = true
