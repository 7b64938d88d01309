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

// Package dict implements writing .dict dictionary data files.
//
// The data file is the concatenation of entry payloads. With
// sametypesequence=x each payload is XDXF-style text: the headword wrapped
// in a <k> tag, a newline, and the definition text. Payload boundaries are
// recorded by the .idx file, so the writer reports the offset and size of
// every payload it appends.
package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	keyOpen  = "<k>"
	keyClose = "</k>\n"
)

// ErrPayloadTooLarge indicates an entry payload whose size does not fit in
// the index's 32-bit size field. Truncation would corrupt the offsets of
// every following entry, so this is fatal.
var ErrPayloadTooLarge = errors.New("entry payload too large")

// Writer writes entry payloads to a .dict file in index order.
type Writer struct {
	w      *bufio.Writer
	offset uint64
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: bufio.NewWriter(w),
	}
}

// WriteEntry appends the payload for one entry and returns the payload's
// starting offset and byte size.
func (w *Writer) WriteEntry(headword, definition string) (uint64, uint32, error) {
	n := len(keyOpen) + len(headword) + len(keyClose) + len(definition)
	if uint64(n) > math.MaxUint32 {
		return 0, 0, fmt.Errorf("%w: %q is %d bytes", ErrPayloadTooLarge, headword, n)
	}

	for _, part := range []string{keyOpen, headword, keyClose, definition} {
		if _, err := w.w.WriteString(part); err != nil {
			return 0, 0, fmt.Errorf("writing entry %q: %w", headword, err)
		}
	}

	offset := w.offset
	w.offset += uint64(n)
	return offset, uint32(n), nil
}

// Flush flushes buffered payloads to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flushing dict: %w", err)
	}
	return nil
}

// Size returns the total byte size of the written data.
func (w *Writer) Size() int64 {
	//nolint:gosec // the per-entry overflow check bounds the total.
	return int64(w.offset)
}

// Headword returns the headword named by a payload's <k> tag. ok is false
// when the payload is not framed as written by WriteEntry.
func Headword(payload []byte) (string, bool) {
	s := string(payload)
	if !strings.HasPrefix(s, keyOpen) {
		return "", false
	}
	s = s[len(keyOpen):]
	i := strings.Index(s, keyClose)
	if i < 0 {
		return "", false
	}
	return s[:i], true
}
