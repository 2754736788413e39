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

// Vec16 is a 512-bit register of sixteen float32 lanes (AVX-512).
type Vec16 [16]float32

// Mask16 is the mask type paired with Vec16.
type Mask16 [16]bool

// Lanes returns 16.
func (Vec16) Lanes() int { return 16 }

// Splat broadcasts x to all sixteen lanes.
func (Vec16) Splat(x float32) Vec16 {
	var v Vec16
	for i := range v {
		v[i] = x
	}
	return v
}

// Load reads sixteen elements from src.
func (Vec16) Load(src []float32) Vec16 {
	var v Vec16
	copy(v[:], src[:16])
	return v
}

// LoadPartial reads up to sixteen elements from src, zero-filling the rest.
func (Vec16) LoadPartial(src []float32) Vec16 {
	var v Vec16
	copy(v[:], src)
	return v
}

// Store writes all sixteen lanes to dst.
func (v Vec16) Store(dst []float32) { copy(dst[:16], v[:]) }

// StoreN writes the first n lanes to dst.
func (v Vec16) StoreN(dst []float32, n int) { copy(dst[:n], v[:n]) }

// Add returns the elementwise sum.
func (a Vec16) Add(b Vec16) Vec16 {
	var r Vec16
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// Sub returns the elementwise difference.
func (a Vec16) Sub(b Vec16) Vec16 {
	var r Vec16
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// Mul returns the elementwise product.
func (a Vec16) Mul(b Vec16) Vec16 {
	var r Vec16
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// Div returns the elementwise quotient.
func (a Vec16) Div(b Vec16) Vec16 {
	var r Vec16
	for i := range r {
		r[i] = a[i] / b[i]
	}
	return r
}

// Max returns the elementwise maximum.
func (a Vec16) Max(b Vec16) Vec16 {
	var r Vec16
	for i := range r {
		r[i] = a[i]
		if b[i] > r[i] {
			r[i] = b[i]
		}
	}
	return r
}

// FoldSplat horizontally combines all lanes and rebroadcasts the result.
func (a Vec16) FoldSplat(seed float32, combine func(acc, x float32) float32) Vec16 {
	acc := seed
	for _, x := range a {
		acc = combine(acc, x)
	}
	var v Vec16
	return v.Splat(acc)
}

// FirstN returns a mask with the first n lanes set.
func (Vec16) FirstN(n int) Mask16 {
	var m Mask16
	for i := 0; i < n && i < len(m); i++ {
		m[i] = true
	}
	return m
}

// Blend selects lanes from b where m is set, a elsewhere.
func (a Vec16) Blend(b Vec16, m Mask16) Vec16 {
	r := a
	for i := range r {
		if m[i] {
			r[i] = b[i]
		}
	}
	return r
}
