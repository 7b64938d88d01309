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

package idx

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
)

// recordTail is the fixed-size portion of an index record following the
// null terminator: two big-endian uint32 fields.
const recordTail = 8

// Scanner scans a written index from start to end. It is used to verify
// built artifacts and in round-trip tests.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner returns a new index scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(bufio.NewReader(r))
	s.Split(splitIndex)
	return &Scanner{s: s}
}

// Scan advances to the next index record. It returns false when the index
// is exhausted or an error occurred.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Word returns the current index record.
func (s *Scanner) Word() *Word {
	var w Word
	b := s.s.Bytes()
	if i := bytes.IndexByte(b, 0); i >= 0 && len(b) >= i+1+recordTail {
		w.Word = string(b[:i])
		w.Offset = binary.BigEndian.Uint32(b[i+1:])
		w.Size = binary.BigEndian.Uint32(b[i+5:])
	}
	return &w
}

// splitIndex splits one index record: headword bytes, a null terminator,
// and the two 32-bit fields.
func splitIndex(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		tokenSize := i + 1 + recordTail
		if len(data) >= tokenSize {
			return tokenSize, data[:tokenSize], nil
		}
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}
