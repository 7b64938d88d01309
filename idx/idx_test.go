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
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestWriter tests that written records scan back identically.
func TestWriter(t *testing.T) {
	t.Parallel()

	want := []*Word{
		{Word: "apple", Offset: 0, Size: 17},
		{Word: "brick", Offset: 17, Size: 456},
		{Word: "tyúk", Offset: 473, Size: 3},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, word := range want {
		if err := w.Add(word.Word, uint64(word.Offset), word.Size); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if want, got := 3, w.Count(); want != got {
		t.Errorf("count; want: %d, got: %d", want, got)
	}
	if want, got := int64(buf.Len()), w.Size(); want != got {
		t.Errorf("size; want: %d, got: %d", want, got)
	}

	var got []*Word
	s := NewScanner(&buf)
	for s.Scan() {
		got = append(got, s.Word())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("words (-want, +got):\n%s", diff)
	}
}

// TestWriter_errors tests fatal record errors.
func TestWriter_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		word   string
		offset uint64
		size   uint32
		err    error
	}{
		{
			name: "empty word",
			word: "",
			err:  ErrInvalidWord,
		},
		{
			name: "embedded null",
			word: "ap\x00ple",
			err:  ErrInvalidWord,
		},
		{
			name:   "offset overflow",
			word:   "apple",
			offset: math.MaxUint32 + 1,
			err:    ErrOffsetOverflow,
		},
		{
			name:   "offset at limit",
			word:   "apple",
			offset: math.MaxUint32,
			size:   1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			w := NewWriter(&bytes.Buffer{})
			err := w.Add(test.word, test.offset, test.size)
			if !errors.Is(err, test.err) {
				t.Errorf("Add; want: %v, got: %v", test.err, err)
			}
		})
	}
}

// TestWriter_layout tests the exact byte layout of a record.
func TestWriter_layout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Add("pig", 0x01020304, 0x0a0b0c0d); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := []byte{'p', 'i', 'g', 0, 0x01, 0x02, 0x03, 0x04, 0x0a, 0x0b, 0x0c, 0x0d}
	if diff := cmp.Diff(want, buf.Bytes()); diff != "" {
		t.Errorf("record bytes (-want, +got):\n%s", diff)
	}
}
