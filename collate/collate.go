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

// Package collate implements the canonical headword ordering used by the
// dictionary index.
//
// The order is the one dictionary readers expect of a version 2.4.2 index:
// headwords compare as byte strings after ASCII-only case folding, and ties
// are broken by a plain bytewise comparison of the unfolded strings. Only
// the bytes 'A'..'Z' fold; multi-byte UTF-8 sequences pass through
// untouched, so accented headwords sort by their raw encoding rather than
// by any locale rule.
package collate

import "strings"

// Compare returns a negative number when a sorts before b, a positive
// number when a sorts after b, and zero when a == b.
func Compare(a, b string) int {
	if c := compareFolded(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts strictly before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// compareFolded compares a and b bytewise under ASCII case folding.
func compareFolded(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca := foldByte(a[i])
		cb := foldByte(b[i])
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func foldByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
