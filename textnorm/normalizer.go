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

// Package textnorm normalizes text prior to tokenization while tracking
// byte offsets back into the original string.
//
// Every normalizer returns, alongside the normalized text, an offset
// map where entry i gives the byte offset in the original text that
// byte i of the normalized text originated from. Downstream consumers
// use the map to translate positions in model output back to positions
// in the raw input. This package has no relationship with the SIMD
// dispatch core; it is plain single-threaded string processing.
package textnorm

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalizer transforms text and reports where each normalized byte
// came from.
type Normalizer interface {
	// Normalize returns the normalized text and a byte-offset map the
	// same length as the normalized text: offsets[i] is the byte offset
	// in the input that byte i of the output originated from.
	Normalize(text string) (string, []int)
}

// identityOffsets returns the offset map of a no-op transformation.
func identityOffsets(n int) []int {
	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = i
	}
	return offsets
}

// BertOptions configures a Bert normalizer.
type BertOptions struct {
	// Lowercase converts all text to lowercase, using full Unicode case
	// mappings (a single character may expand to several).
	Lowercase bool

	// StripAccents removes accents, defined as Unicode characters in
	// the nonspacing mark ("Mn") category, after canonical
	// decomposition.
	StripAccents bool
}

// Bert applies the normalization used by BERT and BERT-derived models.
type Bert struct {
	opts BertOptions
}

// NewBert returns a Bert normalizer with the given options.
func NewBert(opts BertOptions) *Bert {
	return &Bert{opts: opts}
}

// Normalize implements Normalizer. Every output byte derived from an
// input character maps to that character's starting byte offset.
func (b *Bert) Normalize(text string) (string, []int) {
	if !b.opts.Lowercase && !b.opts.StripAccents {
		return text, identityOffsets(len(text))
	}

	var out strings.Builder
	out.Grow(len(text))
	offsets := make([]int, 0, len(text))
	lower := cases.Lower(language.Und)

	for offset, ch := range text {
		s := string(ch)
		if b.opts.StripAccents {
			s = stripMarks(s)
		}
		if b.opts.Lowercase {
			s = lower.String(s)
		}
		out.WriteString(s)
		for i := 0; i < len(s); i++ {
			offsets = append(offsets, offset)
		}
	}
	return out.String(), offsets
}

// stripMarks canonically decomposes s and drops nonspacing marks.
func stripMarks(s string) string {
	decomposed := norm.NFD.String(s)
	var out strings.Builder
	out.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// Replace substitutes every match of a regular expression with a fixed
// string. Replacement bytes map to the starting offset of the match
// they replaced.
type Replace struct {
	re      *regexp.Regexp
	content string
}

// NewReplace compiles pattern and returns a Replace normalizer that
// substitutes matches with content.
func NewReplace(pattern, content string) (*Replace, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("textnorm: compiling replace pattern: %w", err)
	}
	return &Replace{re: re, content: content}, nil
}

// Normalize implements Normalizer.
func (r *Replace) Normalize(text string) (string, []int) {
	var out strings.Builder
	out.Grow(len(text))
	offsets := make([]int, 0, len(text))

	last := 0
	for _, m := range r.re.FindAllStringIndex(text, -1) {
		out.WriteString(text[last:m[0]])
		for i := last; i < m[0]; i++ {
			offsets = append(offsets, i)
		}

		out.WriteString(r.content)
		for i := 0; i < len(r.content); i++ {
			offsets = append(offsets, m[0])
		}

		last = m[1]
	}

	out.WriteString(text[last:])
	for i := last; i < len(text); i++ {
		offsets = append(offsets, i)
	}
	return out.String(), offsets
}

// Sequence runs a series of normalizers in order, composing their
// offset maps so the final map points into the original input.
type Sequence struct {
	normalizers []Normalizer
}

// NewSequence returns a normalizer that applies the given normalizers
// in order. An empty sequence is a no-op.
func NewSequence(normalizers ...Normalizer) *Sequence {
	return &Sequence{normalizers: normalizers}
}

// Normalize implements Normalizer.
func (s *Sequence) Normalize(text string) (string, []int) {
	normalized := text
	offsets := identityOffsets(len(text))

	for _, n := range s.normalizers {
		next, nextOffsets := n.Normalize(normalized)
		for i, off := range nextOffsets {
			nextOffsets[i] = offsets[off]
		}
		normalized = next
		offsets = nextOffsets
	}
	return normalized, offsets
}

// Unicode normalizes text into one of the standard Unicode
// normalization forms (norm.NFC, norm.NFD, norm.NFKC, norm.NFKD).
// All bytes of a normalized segment map to the starting offset of the
// input segment they derive from.
type Unicode struct {
	Form norm.Form
}

// Normalize implements Normalizer.
func (u Unicode) Normalize(text string) (string, []int) {
	var out strings.Builder
	out.Grow(len(text))
	offsets := make([]int, 0, len(text))

	// Walk one normalization boundary at a time so offsets stay exact;
	// normalizing the whole string at once would lose the segment
	// structure.
	for pos := 0; pos < len(text); {
		n := u.Form.NextBoundaryInString(text[pos:], true)
		if n <= 0 {
			n = len(text) - pos
		}
		seg := u.Form.String(text[pos : pos+n])
		out.WriteString(seg)
		for i := 0; i < len(seg); i++ {
			offsets = append(offsets, pos)
		}
		pos += n
	}
	return out.String(), offsets
}
