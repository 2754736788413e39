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

func TestWidthString(t *testing.T) {
	tests := []struct {
		width Width
		want  string
	}{
		{WidthScalar, "scalar"},
		{WidthWasm128, "wasm128"},
		{WidthNeon, "neon"},
		{Width256, "avx2"},
		{Width512, "avx512"},
		{Width(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.width.String(); got != tt.want {
			t.Errorf("Width(%d).String() = %q, want %q", tt.width, got, tt.want)
		}
	}
}

func TestWidthLaneCount(t *testing.T) {
	tests := []struct {
		width Width
		want  int
	}{
		{WidthScalar, 1},
		{WidthWasm128, 4},
		{WidthNeon, 4},
		{Width256, 8},
		{Width512, 16},
	}
	for _, tt := range tests {
		if got := tt.width.LaneCount(); got != tt.want {
			t.Errorf("%s.LaneCount() = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestPreferredIsInLadder(t *testing.T) {
	switch w := Preferred(); w {
	case WidthScalar, WidthWasm128, WidthNeon, Width256, Width512:
	default:
		t.Errorf("Preferred() = %v, not in the closed ladder", w)
	}
	if Preferred().LaneCount() > MaxLanes {
		t.Errorf("Preferred().LaneCount() = %d exceeds MaxLanes", Preferred().LaneCount())
	}
}

// widthProbe reports which instantiation ran, by lane count.
type widthProbe struct{}

func (widthProbe) EvalScalar() int { return 1 }
func (widthProbe) Eval128() int    { return 4 }
func (widthProbe) Eval256() int    { return 8 }
func (widthProbe) Eval512() int    { return 16 }

func TestDispatchRunsPreferredWidth(t *testing.T) {
	got := Dispatch[int](widthProbe{})
	if want := Preferred().LaneCount(); got != want {
		t.Errorf("Dispatch ran %d-lane instantiation, preferred width has %d lanes", got, want)
	}
}
