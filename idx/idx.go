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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

var (
	// ErrOffsetOverflow indicates a data offset or size that does not fit
	// in the 32-bit index fields.
	ErrOffsetOverflow = errors.New("offset overflows 32 bits")

	// ErrInvalidWord indicates a headword that cannot be written, such as
	// one containing an embedded null byte.
	ErrInvalidWord = errors.New("invalid index word")
)

// Word is a single .idx record.
type Word struct {
	// Word is the headword.
	Word string

	// Offset is the byte position of the entry's payload in the .dict
	// file.
	Offset uint32

	// Size is the byte length of the payload.
	Size uint32
}

// Writer writes .idx records. Records must be added in index order; the
// writer does not sort.
type Writer struct {
	w     *bufio.Writer
	count int
	size  int64
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: bufio.NewWriter(w),
	}
}

// Add appends one index record: the headword bytes, a null terminator, and
// the big-endian 32-bit offset and size of the entry's payload.
func (w *Writer) Add(word string, offset uint64, size uint32) error {
	if word == "" || strings.IndexByte(word, 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	if offset > math.MaxUint32 {
		return fmt.Errorf("%w: %q at offset %d", ErrOffsetOverflow, word, offset)
	}

	if _, err := w.w.WriteString(word); err != nil {
		return fmt.Errorf("writing index word: %w", err)
	}
	var buf [9]byte
	binary.BigEndian.PutUint32(buf[1:5], uint32(offset))
	binary.BigEndian.PutUint32(buf[5:9], size)
	if _, err := w.w.Write(buf[:]); err != nil {
		return fmt.Errorf("writing index record: %w", err)
	}

	w.count++
	w.size += int64(len(word)) + 9
	return nil
}

// Flush flushes buffered records to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flushing index: %w", err)
	}
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	return w.count
}

// Size returns the total byte size of the written index. This is the
// idxfilesize value recorded in the .ifo file.
func (w *Writer) Size() int64 {
	return w.size
}
