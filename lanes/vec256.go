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

// Vec8 is a 256-bit register of eight float32 lanes (AVX2).
type Vec8 [8]float32

// Mask8 is the mask type paired with Vec8.
type Mask8 [8]bool

// Lanes returns 8.
func (Vec8) Lanes() int { return 8 }

// Splat broadcasts x to all eight lanes.
func (Vec8) Splat(x float32) Vec8 {
	var v Vec8
	for i := range v {
		v[i] = x
	}
	return v
}

// Load reads eight elements from src.
func (Vec8) Load(src []float32) Vec8 {
	var v Vec8
	copy(v[:], src[:8])
	return v
}

// LoadPartial reads up to eight elements from src, zero-filling the rest.
func (Vec8) LoadPartial(src []float32) Vec8 {
	var v Vec8
	copy(v[:], src)
	return v
}

// Store writes all eight lanes to dst.
func (v Vec8) Store(dst []float32) { copy(dst[:8], v[:]) }

// StoreN writes the first n lanes to dst.
func (v Vec8) StoreN(dst []float32, n int) { copy(dst[:n], v[:n]) }

// Add returns the elementwise sum.
func (a Vec8) Add(b Vec8) Vec8 {
	var r Vec8
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// Sub returns the elementwise difference.
func (a Vec8) Sub(b Vec8) Vec8 {
	var r Vec8
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// Mul returns the elementwise product.
func (a Vec8) Mul(b Vec8) Vec8 {
	var r Vec8
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// Div returns the elementwise quotient.
func (a Vec8) Div(b Vec8) Vec8 {
	var r Vec8
	for i := range r {
		r[i] = a[i] / b[i]
	}
	return r
}

// Max returns the elementwise maximum.
func (a Vec8) Max(b Vec8) Vec8 {
	var r Vec8
	for i := range r {
		r[i] = a[i]
		if b[i] > r[i] {
			r[i] = b[i]
		}
	}
	return r
}

// FoldSplat horizontally combines all lanes and rebroadcasts the result.
func (a Vec8) FoldSplat(seed float32, combine func(acc, x float32) float32) Vec8 {
	acc := seed
	for _, x := range a {
		acc = combine(acc, x)
	}
	var v Vec8
	return v.Splat(acc)
}

// FirstN returns a mask with the first n lanes set.
func (Vec8) FirstN(n int) Mask8 {
	var m Mask8
	for i := 0; i < n && i < len(m); i++ {
		m[i] = true
	}
	return m
}

// Blend selects lanes from b where m is set, a elsewhere.
func (a Vec8) Blend(b Vec8, m Mask8) Vec8 {
	r := a
	for i := range r {
		if m[i] {
			r[i] = b[i]
		}
	}
	return r
}
