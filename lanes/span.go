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

import "fmt"

// SrcDest pairs the source and destination buffers of one kernel call.
// It is either a disjoint (read-only source, write-only destination)
// pair of equal length, or a single buffer transformed in place.
//
// The destination starts out with arbitrary (zero) contents; a chunked
// transform such as Map writes every destination position exactly once
// before returning it. In-place transforms are safe because each lane
// group is read, transformed and written back before the next group is
// touched, so no group reads data a later group has overwritten.
type SrcDest struct {
	src     []float32
	dst     []float32
	inPlace bool
}

// NewSrcDest builds a span over a read-only source and a destination of
// the same length. Mismatched lengths are a caller programming error
// and panic rather than silently computing wrong results.
func NewSrcDest(src, dst []float32) SrcDest {
	if len(src) != len(dst) {
		panic(fmt.Sprintf("lanes: source length %d does not match destination length %d", len(src), len(dst)))
	}
	return SrcDest{src: src, dst: dst}
}

// InPlace builds a span that reads and writes the same buffer.
func InPlace(buf []float32) SrcDest {
	return SrcDest{src: buf, dst: buf, inPlace: true}
}

// Src returns the read view of the source buffer.
func (s SrcDest) Src() []float32 { return s.src }

// Dest returns the destination buffer. It is fully initialized only
// after a transform such as Map has run over the span.
func (s SrcDest) Dest() []float32 { return s.dst }

// Len returns the shared length of source and destination.
func (s SrcDest) Len() int { return len(s.src) }

// IsInPlace reports whether source and destination are the same buffer.
func (s SrcDest) IsInPlace() bool { return s.inPlace }
