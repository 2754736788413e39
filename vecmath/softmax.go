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

package vecmath

import (
	"github.com/chewxy/math32"

	"github.com/ajroetker/go-lanes/lanes"
)

// Softmax computes the numerically stable softmax of input into output:
//
//	softmax(x_i) = exp(x_i - max(x)) / sum_j exp(x_j - max(x))
//
// input and output must have the same length; a mismatch panics. The
// fully initialized output is returned. A zero-length input returns
// immediately. Non-finite inputs propagate per IEEE-754.
func Softmax(input, output []float32) []float32 {
	return lanes.Dispatch[[]float32](&softmaxOp{span: lanes.NewSrcDest(input, output)})
}

// SoftmaxInPlace computes softmax over x, overwriting it.
func SoftmaxInPlace(x []float32) []float32 {
	return lanes.Dispatch[[]float32](&softmaxOp{span: lanes.InPlace(x)})
}

// softmaxOp holds the inputs of one softmax invocation. Its generic
// body runs exactly once, at the one width the dispatcher picks.
type softmaxOp struct {
	span lanes.SrcDest
}

func (op *softmaxOp) EvalScalar() []float32 { return softmaxEval[lanes.Vec1, lanes.Mask1](op.span) }
func (op *softmaxOp) Eval128() []float32    { return softmaxEval[lanes.Vec4, lanes.Mask4](op.span) }
func (op *softmaxOp) Eval256() []float32    { return softmaxEval[lanes.Vec8, lanes.Mask8](op.span) }
func (op *softmaxOp) Eval512() []float32    { return softmaxEval[lanes.Vec16, lanes.Mask16](op.span) }

// softmaxEval is the width-agnostic three-pass body.
func softmaxEval[V lanes.Vec[V, M], M any](sd lanes.SrcDest) []float32 {
	dst := sd.Dest()
	if sd.Len() == 0 {
		return dst
	}
	var z V

	// Pass 1: global maximum, for numerical stability. The seed is the
	// minimum representable float, which is neutral for a max-fold, so
	// it is also safe as the padding for the final partial group.
	maxVec := lanes.Fold[V, M](sd.Src(), z.Splat(-math32.MaxFloat32), func(acc, v V) V {
		return acc.Max(v)
	})
	maxVec = maxVec.FoldSplat(-math32.MaxFloat32, math32.Max)

	// Pass 2: y = exp(x - max), keeping a running per-lane sum of y.
	prevSum := z.Splat(0)
	sum := z.Splat(0)
	dst = lanes.Map[V, M](sd, func(x V) V {
		y := expVec[V, M](x.Sub(maxVec))
		prevSum = sum
		sum = sum.Add(y)
		return y
	})

	// exp of the zero padding in the final partial group is nonzero, so
	// unlike the max-fold there is no safe neutral fill. Undo the last
	// update of sum for lanes at or past the remainder.
	if r := len(dst) % z.Lanes(); r != 0 {
		sum = prevSum.Blend(sum, z.FirstN(r))
	}

	// Pass 3: reduce the corrected sum and scale by its reciprocal.
	sum = sum.FoldSplat(0, func(acc, x float32) float32 { return acc + x })
	invSum := z.Splat(1).Div(sum)
	lanes.Map[V, M](lanes.InPlace(dst), func(x V) V {
		return x.Mul(invSum)
	})

	return dst
}
