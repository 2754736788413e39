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

// Map walks the span in strictly increasing index order in groups of
// Lanes(), applying fn to each group and storing the result. The final
// partial group of length r (0 < r < Lanes()) is loaded with zero fill,
// transformed, and only its first r lanes are stored back; destination
// positions beyond the span are never written.
//
// Because groups are processed strictly in order, fn may carry state
// across calls (such as a running accumulator) and its side effects
// occur in a fixed, reproducible sequence. Note that for a partial
// final group fn still sees all Lanes() lanes, with the trailing lanes
// holding the fill value; stateful callers must correct for those lanes
// afterwards (see FirstN and Blend).
//
// Map returns the destination, now fully initialized.
func Map[V Vec[V, M], M any](sd SrcDest, fn func(V) V) []float32 {
	var z V
	n := z.Lanes()
	src, dst := sd.src, sd.dst

	i := 0
	for ; i+n <= len(src); i += n {
		y := fn(z.Load(src[i:]))
		y.Store(dst[i:])
	}
	if r := len(src) - i; r > 0 {
		y := fn(z.LoadPartial(src[i:]))
		y.StoreN(dst[i:], r)
	}
	return dst
}

// Fold walks src in groups of Lanes(), updating a running accumulator
// vector as acc = combine(acc, group). Lanes of the final partial group
// beyond the source length are refilled from the corresponding lanes of
// seed, so a seed splatted with a value neutral for combine (zero for a
// sum, the minimum float for a max) keeps padding lanes from corrupting
// the accumulator.
//
// The returned accumulator is still Lanes() wide; reduce it to a scalar
// with FoldSplat. An empty src returns seed unchanged.
func Fold[V Vec[V, M], M any](src []float32, seed V, combine func(acc, v V) V) V {
	var z V
	n := z.Lanes()
	acc := seed

	i := 0
	for ; i+n <= len(src); i += n {
		acc = combine(acc, z.Load(src[i:]))
	}
	if r := len(src) - i; r > 0 {
		v := seed.Blend(z.LoadPartial(src[i:]), z.FirstN(r))
		acc = combine(acc, v)
	}
	return acc
}
