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

func TestNewSrcDestLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched lengths")
		}
	}()
	NewSrcDest(make([]float32, 3), make([]float32, 4))
}

func TestSrcDestAccessors(t *testing.T) {
	src := []float32{1, 2, 3}
	dst := make([]float32, 3)

	sd := NewSrcDest(src, dst)
	if sd.Len() != 3 {
		t.Errorf("Len() = %d, want 3", sd.Len())
	}
	if sd.IsInPlace() {
		t.Error("disjoint span reported as in place")
	}
	if &sd.Src()[0] != &src[0] || &sd.Dest()[0] != &dst[0] {
		t.Error("accessors do not alias the constructor arguments")
	}

	ip := InPlace(src)
	if !ip.IsInPlace() {
		t.Error("in-place span not reported as in place")
	}
	if &ip.Src()[0] != &ip.Dest()[0] {
		t.Error("in-place source and destination differ")
	}
}

func TestSrcDestEmpty(t *testing.T) {
	sd := NewSrcDest(nil, nil)
	if sd.Len() != 0 {
		t.Errorf("Len() = %d, want 0", sd.Len())
	}
	got := Map[Vec8, Mask8](sd, func(v Vec8) Vec8 { return v })
	if len(got) != 0 {
		t.Errorf("Map over empty span returned length %d", len(got))
	}
}
