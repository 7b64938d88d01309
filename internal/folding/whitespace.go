// Copyright 2025 The mkstardict Authors
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

// Package folding implements text folding used to clean up sense record
// fields before they are rendered into dictionary entries.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Whitespace performs whitespace folding on the input. Leading and trailing
// whitespace is removed and each internal whitespace span is replaced with a
// single ASCII space rune.
type Whitespace struct {
	// started is true after the first non-whitespace rune.
	started bool

	// inSpan is true while consuming a whitespace span.
	inSpan bool
}

// Transform implements [transform.Transformer.Transform].
func (f *Whitespace) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			// Leading whitespace is dropped outright; internal spans are
			// held back until the next non-whitespace rune so trailing
			// whitespace is never emitted.
			if f.started {
				f.inSpan = true
			}
			continue
		}

		if f.inSpan {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			f.inSpan = false
		}
		f.started = true
		nSrc += size

		// c may be utf8.RuneError with size 1, in which case the encoded
		// replacement rune is 3 bytes long.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *Whitespace) Reset() {
	*f = Whitespace{}
}

// Fold returns s with whitespace folded. Invalid UTF-8 sequences are
// replaced with the replacement rune.
func Fold(s string) string {
	folded, _, err := transform.String(&Whitespace{}, s)
	if err != nil {
		// The transformer never errors at EOF.
		return s
	}
	return folded
}
