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

package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/szotar-tools/mkstardict"
	"github.com/szotar-tools/mkstardict/sense"
)

func buildTestDict(t *testing.T) *mkstardict.Summary {
	t.Helper()

	records := `{"word":"pig","pos_ai_hu":"főnév","meaning_hu":"disznó","example_surface_en":"The pig ran."}
{"word":"hen","pos_ai_hu":"főnév","meaning_hu":"tyúk"}
{"word":"brick","meaning_hu":"tégla"}
`
	sum, err := mkstardict.Compile(&mkstardict.Options{
		Dir:      t.TempDir(),
		Base:     "eng-hun",
		Bookname: "test",
		Lang:     "en-hu",
		Sources: []sense.Source{
			{Label: "gemma3:27b", R: strings.NewReader(records)},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now: func() time.Time {
			return time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)
		},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return sum
}

// TestCheckDictionary tests that a fresh build passes verification.
func TestCheckDictionary(t *testing.T) {
	t.Parallel()

	sum := buildTestDict(t)

	problems, err := checkDictionary(sum.IfoPath)
	if err != nil {
		t.Fatalf("checkDictionary: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("problems with fresh build: %q", problems)
	}
}

// TestCheckDictionary_corrupt tests that verification flags a truncated
// data file.
func TestCheckDictionary_corrupt(t *testing.T) {
	t.Parallel()

	sum := buildTestDict(t)

	// Truncating the data file breaks the index's span invariant.
	if err := os.Truncate(sum.DictPath, sum.DictSize-1); err != nil {
		t.Fatalf("Truncate: %v", err)
	}

	problems, err := checkDictionary(sum.IfoPath)
	if err != nil {
		t.Fatalf("checkDictionary: %v", err)
	}
	if len(problems) == 0 {
		t.Errorf("truncated data file not detected")
	}
}

// TestCheckDictionary_wordcountMismatch tests that metadata edits are
// detected.
func TestCheckDictionary_wordcountMismatch(t *testing.T) {
	t.Parallel()

	sum := buildTestDict(t)

	b, err := os.ReadFile(sum.IfoPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	edited := strings.Replace(string(b), "wordcount=3", "wordcount=4", 1)
	if err := os.WriteFile(sum.IfoPath, []byte(edited), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	problems, err := checkDictionary(sum.IfoPath)
	if err != nil {
		t.Fatalf("checkDictionary: %v", err)
	}
	if len(problems) == 0 {
		t.Errorf("wordcount mismatch not detected")
	}
}
