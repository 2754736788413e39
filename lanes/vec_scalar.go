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

// Vec1 is the single-lane scalar fallback. It is valid on every CPU and
// serves as the reference path when testing the wider variants.
type Vec1 [1]float32

// Mask1 is the mask type paired with Vec1.
type Mask1 [1]bool

// Lanes returns 1.
func (Vec1) Lanes() int { return 1 }

// Splat broadcasts x to the single lane.
func (Vec1) Splat(x float32) Vec1 { return Vec1{x} }

// Load reads one element from src.
func (Vec1) Load(src []float32) Vec1 { return Vec1{src[0]} }

// LoadPartial reads one element from src, or zero if src is empty.
func (Vec1) LoadPartial(src []float32) Vec1 {
	var v Vec1
	copy(v[:], src)
	return v
}

// Store writes the lane to dst[0].
func (v Vec1) Store(dst []float32) { dst[0] = v[0] }

// StoreN writes the first n lanes to dst.
func (v Vec1) StoreN(dst []float32, n int) { copy(dst[:n], v[:n]) }

// Add returns a + b.
func (a Vec1) Add(b Vec1) Vec1 { return Vec1{a[0] + b[0]} }

// Sub returns a - b.
func (a Vec1) Sub(b Vec1) Vec1 { return Vec1{a[0] - b[0]} }

// Mul returns a * b.
func (a Vec1) Mul(b Vec1) Vec1 { return Vec1{a[0] * b[0]} }

// Div returns a / b.
func (a Vec1) Div(b Vec1) Vec1 { return Vec1{a[0] / b[0]} }

// Max returns the larger of a and b.
func (a Vec1) Max(b Vec1) Vec1 {
	if b[0] > a[0] {
		return b
	}
	return a
}

// FoldSplat combines the single lane with seed.
func (a Vec1) FoldSplat(seed float32, combine func(acc, x float32) float32) Vec1 {
	return Vec1{combine(seed, a[0])}
}

// FirstN returns a mask with the lane set if n >= 1.
func (Vec1) FirstN(n int) Mask1 { return Mask1{n >= 1} }

// Blend returns b where m is set, a elsewhere.
func (a Vec1) Blend(b Vec1, m Mask1) Vec1 {
	if m[0] {
		return b
	}
	return a
}
