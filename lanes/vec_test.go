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

import "testing"

// testVec exercises the full capability set at one width.
func testVec[V Vec[V, M], M any](t *testing.T) {
	var z V
	n := z.Lanes()

	src := make([]float32, n)
	for i := range src {
		src[i] = float32(i + 1)
	}

	t.Run("load store roundtrip", func(t *testing.T) {
		dst := make([]float32, n)
		z.Load(src).Store(dst)
		for i := range dst {
			if dst[i] != src[i] {
				t.Errorf("lane %d = %v, want %v", i, dst[i], src[i])
			}
		}
	})

	t.Run("load partial zero fills", func(t *testing.T) {
		if n == 1 {
			t.Skip("no partial group at scalar width")
		}
		dst := make([]float32, n)
		z.LoadPartial(src[:n-1]).Store(dst)
		for i := 0; i < n-1; i++ {
			if dst[i] != src[i] {
				t.Errorf("lane %d = %v, want %v", i, dst[i], src[i])
			}
		}
		if dst[n-1] != 0 {
			t.Errorf("fill lane = %v, want 0", dst[n-1])
		}
	})

	t.Run("storen leaves tail untouched", func(t *testing.T) {
		dst := make([]float32, n)
		for i := range dst {
			dst[i] = -99
		}
		r := n - 1
		if r == 0 {
			r = 1
		}
		z.Load(src).StoreN(dst, r)
		for i := 0; i < r; i++ {
			if dst[i] != src[i] {
				t.Errorf("lane %d = %v, want %v", i, dst[i], src[i])
			}
		}
		for i := r; i < n; i++ {
			if dst[i] != -99 {
				t.Errorf("lane %d = %v, want untouched sentinel", i, dst[i])
			}
		}
	})

	t.Run("splat", func(t *testing.T) {
		dst := make([]float32, n)
		z.Splat(3.5).Store(dst)
		for i, x := range dst {
			if x != 3.5 {
				t.Errorf("lane %d = %v, want 3.5", i, x)
			}
		}
	})

	t.Run("arithmetic", func(t *testing.T) {
		a := z.Load(src)
		b := z.Splat(2)
		cases := []struct {
			name string
			got  V
			want func(x float32) float32
		}{
			{"add", a.Add(b), func(x float32) float32 { return x + 2 }},
			{"sub", a.Sub(b), func(x float32) float32 { return x - 2 }},
			{"mul", a.Mul(b), func(x float32) float32 { return x * 2 }},
			{"div", a.Div(b), func(x float32) float32 { return x / 2 }},
		}
		for _, tc := range cases {
			dst := make([]float32, n)
			tc.got.Store(dst)
			for i := range dst {
				if want := tc.want(src[i]); dst[i] != want {
					t.Errorf("%s lane %d = %v, want %v", tc.name, i, dst[i], want)
				}
			}
		}
	})

	t.Run("max", func(t *testing.T) {
		a := z.Load(src)
		b := z.Splat(2.5)
		dst := make([]float32, n)
		a.Max(b).Store(dst)
		for i := range dst {
			want := src[i]
			if want < 2.5 {
				want = 2.5
			}
			if dst[i] != want {
				t.Errorf("lane %d = %v, want %v", i, dst[i], want)
			}
		}
	})

	t.Run("fold splat", func(t *testing.T) {
		sum := z.Load(src).FoldSplat(0, func(acc, x float32) float32 { return acc + x })
		want := float32(n) * float32(n+1) / 2
		dst := make([]float32, n)
		sum.Store(dst)
		for i, x := range dst {
			if x != want {
				t.Errorf("lane %d = %v, want rebroadcast sum %v", i, x, want)
			}
		}
	})

	t.Run("firstn blend", func(t *testing.T) {
		a := z.Splat(1)
		b := z.Splat(2)
		for k := 0; k <= n; k++ {
			dst := make([]float32, n)
			a.Blend(b, z.FirstN(k)).Store(dst)
			for i := range dst {
				want := float32(1)
				if i < k {
					want = 2
				}
				if dst[i] != want {
					t.Errorf("k=%d lane %d = %v, want %v", k, i, dst[i], want)
				}
			}
		}
	})

	t.Run("firstn clamps", func(t *testing.T) {
		a := z.Splat(1)
		b := z.Splat(2)
		dst := make([]float32, n)
		a.Blend(b, z.FirstN(n+5)).Store(dst)
		for i := range dst {
			if dst[i] != 2 {
				t.Errorf("lane %d = %v, want all lanes selected", i, dst[i])
			}
		}
		a.Blend(b, z.FirstN(-1)).Store(dst)
		for i := range dst {
			if dst[i] != 1 {
				t.Errorf("lane %d = %v, want no lanes selected", i, dst[i])
			}
		}
	})
}

func TestVec(t *testing.T) {
	t.Run("scalar", testVec[Vec1, Mask1])
	t.Run("vec4", testVec[Vec4, Mask4])
	t.Run("vec8", testVec[Vec8, Mask8])
	t.Run("vec16", testVec[Vec16, Mask16])
}
