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

package ifo

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testIfo = Ifo{
	Version:          Version,
	WordCount:        2137,
	IdxFileSize:      38344,
	Bookname:         "English-Hungarian dictionary",
	Date:             "2025.11.30",
	SameTypeSequence: "x",
	Description:      "Built from the Animal Farm word list.",
	Encoding:         "UTF-8",
	Lang:             "en-hu",
}

// TestIfo_WriteTo tests the exact file layout.
func TestIfo_WriteTo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := testIfo.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if want, got := int64(buf.Len()), n; want != got {
		t.Errorf("bytes written; want: %d, got: %d", want, got)
	}

	want := strings.Join([]string{
		"StarDict's dict ifo file",
		"version=2.4.2",
		"wordcount=2137",
		"idxfilesize=38344",
		"bookname=English-Hungarian dictionary",
		"date=2025.11.30",
		"sametypesequence=x",
		"description=Built from the Animal Farm word list.",
		"encoding=UTF-8",
		"",
		"lang=en-hu",
		"",
	}, "\n")
	if got := buf.String(); want != got {
		t.Errorf("file; want:\n%q\ngot:\n%q", want, got)
	}
}

// TestIfo_roundTrip tests that a written descriptor parses back.
func TestIfo_roundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := testIfo.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	got, err := New(&buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if diff := cmp.Diff(&testIfo, got); diff != "" {
		t.Errorf("ifo (-want, +got):\n%s", diff)
	}
}

// TestNew_errors tests parse failures.
func TestNew_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		err  error
	}{
		{
			name: "bad magic",
			data: "not an ifo file\nversion=2.4.2\n",
			err:  ErrBadMagic,
		},
		{
			name: "empty",
			data: "",
			err:  ErrBadMagic,
		},
		{
			name: "missing version",
			data: Magic + "\nbookname=test\n",
			err:  ErrInvalidIfo,
		},
		{
			name: "no keys",
			data: Magic + "\n",
			err:  ErrInvalidIfo,
		},
		{
			name: "bad wordcount",
			data: Magic + "\nversion=2.4.2\nwordcount=lots\n",
			err:  ErrInvalidIfo,
		},
		{
			name: "line without separator",
			data: Magic + "\nversion=2.4.2\nnonsense\n",
			err:  ErrInvalidIfo,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(strings.NewReader(test.data))
			if !errors.Is(err, test.err) {
				t.Errorf("New; want: %v, got: %v", test.err, err)
			}
		})
	}
}
