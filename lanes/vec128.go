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

// Vec4 is a 128-bit register of four float32 lanes, the width used by
// ARM NEON and WASM simd128. The loop bodies over fixed-length arrays
// compile to straight-line code the backend can vectorize.
type Vec4 [4]float32

// Mask4 is the mask type paired with Vec4.
type Mask4 [4]bool

// Lanes returns 4.
func (Vec4) Lanes() int { return 4 }

// Splat broadcasts x to all four lanes.
func (Vec4) Splat(x float32) Vec4 { return Vec4{x, x, x, x} }

// Load reads four elements from src.
func (Vec4) Load(src []float32) Vec4 {
	var v Vec4
	copy(v[:], src[:4])
	return v
}

// LoadPartial reads up to four elements from src, zero-filling the rest.
func (Vec4) LoadPartial(src []float32) Vec4 {
	var v Vec4
	copy(v[:], src)
	return v
}

// Store writes all four lanes to dst.
func (v Vec4) Store(dst []float32) { copy(dst[:4], v[:]) }

// StoreN writes the first n lanes to dst.
func (v Vec4) StoreN(dst []float32, n int) { copy(dst[:n], v[:n]) }

// Add returns the elementwise sum.
func (a Vec4) Add(b Vec4) Vec4 {
	var r Vec4
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// Sub returns the elementwise difference.
func (a Vec4) Sub(b Vec4) Vec4 {
	var r Vec4
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// Mul returns the elementwise product.
func (a Vec4) Mul(b Vec4) Vec4 {
	var r Vec4
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// Div returns the elementwise quotient.
func (a Vec4) Div(b Vec4) Vec4 {
	var r Vec4
	for i := range r {
		r[i] = a[i] / b[i]
	}
	return r
}

// Max returns the elementwise maximum.
func (a Vec4) Max(b Vec4) Vec4 {
	var r Vec4
	for i := range r {
		r[i] = a[i]
		if b[i] > r[i] {
			r[i] = b[i]
		}
	}
	return r
}

// FoldSplat horizontally combines all lanes and rebroadcasts the result.
func (a Vec4) FoldSplat(seed float32, combine func(acc, x float32) float32) Vec4 {
	acc := seed
	for _, x := range a {
		acc = combine(acc, x)
	}
	var v Vec4
	return v.Splat(acc)
}

// FirstN returns a mask with the first n lanes set.
func (Vec4) FirstN(n int) Mask4 {
	var m Mask4
	for i := 0; i < n && i < len(m); i++ {
		m[i] = true
	}
	return m
}

// Blend selects lanes from b where m is set, a elsewhere.
func (a Vec4) Blend(b Vec4, m Mask4) Vec4 {
	r := a
	for i := range r {
		if m[i] {
			r[i] = b[i]
		}
	}
	return r
}
