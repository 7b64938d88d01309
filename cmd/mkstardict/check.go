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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/szotar-tools/mkstardict/collate"
	"github.com/szotar-tools/mkstardict/dict"
	"github.com/szotar-tools/mkstardict/idx"
	"github.com/szotar-tools/mkstardict/ifo"
)

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "Verify the consistency of a built dictionary",
	ArgsUsage: "IFO",
	Action:    runCheck,
}

func runCheck(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: expected the path of an .ifo file", ErrUsage)
	}
	ifoPath := c.Args().First()

	problems, err := checkDictionary(ifoPath)
	if err != nil {
		return err
	}
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(c.App.ErrWriter, p)
		}
		return fmt.Errorf("%w: %q: %d problem(s)", ErrCheckFailed, ifoPath, len(problems))
	}

	fmt.Fprintf(c.App.Writer, "%s: OK\n", ifoPath)
	return nil
}

// checkDictionary verifies one artifact set: metadata consistency,
// monotonic gapless offsets spanning the data file, headword collation
// order, and payload framing. It returns findings; an error means the
// artifacts could not be read at all.
func checkDictionary(ifoPath string) ([]string, error) {
	f, err := os.Open(ifoPath)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", ifoPath, err)
	}
	defer f.Close()

	meta, err := ifo.New(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", ifoPath, err)
	}

	base := strings.TrimSuffix(ifoPath, filepath.Ext(ifoPath))
	idxPath := base + ".idx"
	dictPath := base + ".dict"

	idxFile, err := os.Open(idxPath)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", idxPath, err)
	}
	defer idxFile.Close()

	dictFile, err := os.Open(dictPath)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", dictPath, err)
	}
	defer dictFile.Close()

	var problems []string
	problem := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if meta.Version != ifo.Version {
		problem("unexpected version %q", meta.Version)
	}
	if meta.SameTypeSequence != "x" {
		problem("unexpected sametypesequence %q", meta.SameTypeSequence)
	}

	var (
		count  int
		offset uint64
		prev   string
	)
	s := idx.NewScanner(idxFile)
	for s.Scan() {
		w := s.Word()
		if count > 0 && collate.Compare(prev, w.Word) > 0 {
			problem("index out of order: %q before %q", prev, w.Word)
		}
		if uint64(w.Offset) != offset {
			problem("offset gap at %q: want %d, got %d", w.Word, offset, w.Offset)
			offset = uint64(w.Offset)
		}

		payload := make([]byte, w.Size)
		if _, err := dictFile.ReadAt(payload, int64(w.Offset)); err != nil {
			problem("reading payload for %q: %v", w.Word, err)
		} else if word, ok := dict.Headword(payload); !ok || word != w.Word {
			problem("payload for %q tagged %q", w.Word, word)
		}

		offset += uint64(w.Size)
		prev = w.Word
		count++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning %q: %w", idxPath, err)
	}

	if meta.WordCount != count {
		problem("wordcount mismatch: ifo says %d, index has %d", meta.WordCount, count)
	}

	idxInfo, err := idxFile.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", idxPath, err)
	}
	if meta.IdxFileSize != idxInfo.Size() {
		problem("idxfilesize mismatch: ifo says %d, file is %d", meta.IdxFileSize, idxInfo.Size())
	}

	dictInfo, err := dictFile.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", dictPath, err)
	}
	if offset != uint64(dictInfo.Size()) {
		problem("index spans %d bytes but data file is %d", offset, dictInfo.Size())
	}

	return problems, nil
}
