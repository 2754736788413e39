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

// expVec computes e^x for each lane. This is the portable strategy:
// spill the register to a scratch buffer, apply the scalar float32 exp
// per lane, and reload. It uses only capability-set operations, so the
// same code serves every width, and every width computes bit-identical
// exponentials.
func expVec[V lanes.Vec[V, M], M any](x V) V {
	var buf [lanes.MaxLanes]float32
	n := x.Lanes()
	x.Store(buf[:n])
	for i := 0; i < n; i++ {
		buf[i] = math32.Exp(buf[i])
	}
	var z V
	return z.Load(buf[:n])
}
