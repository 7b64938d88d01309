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

// Package ifo implements writing and reading .ifo dictionary metadata
// files.
//
// The file is line-oriented UTF-8: a fixed magic line followed by
// key=value pairs. The writer emits the exact line set and order produced
// by the legacy build pipeline, including the blank line before the lang
// key, so that rebuilt dictionaries are byte-compatible with the ones
// already shipped.
package ifo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Magic is the fixed first line of every .ifo file.
const Magic = "StarDict's dict ifo file"

// Version is the dictionary format version the compiler produces.
const Version = "2.4.2"

var (
	// ErrBadMagic indicates a file that is not an .ifo file.
	ErrBadMagic = errors.New("bad magic data")

	// ErrInvalidIfo indicates a malformed .ifo file.
	ErrInvalidIfo = errors.New("invalid .ifo file")
)

// Ifo is the metadata descriptor for one dictionary release.
type Ifo struct {
	// Version is the format version string.
	Version string

	// WordCount is the number of index records.
	WordCount int

	// IdxFileSize is the byte size of the .idx file.
	IdxFileSize int64

	// Bookname is the dictionary title.
	Bookname string

	// Date is the generation date in YYYY.MM.DD form.
	Date string

	// SameTypeSequence is the fixed per-entry data type sequence.
	SameTypeSequence string

	// Description is the free-text dictionary description.
	Description string

	// Encoding is the fixed encoding label.
	Encoding string

	// Lang is the language-pair code, e.g. "en-hu".
	Lang string
}

// WriteTo writes the descriptor in the fixed legacy line order. It
// implements [io.WriterTo].
func (i *Ifo) WriteTo(w io.Writer) (int64, error) {
	lines := []string{
		Magic,
		"version=" + i.Version,
		"wordcount=" + strconv.Itoa(i.WordCount),
		"idxfilesize=" + strconv.FormatInt(i.IdxFileSize, 10),
		"bookname=" + i.Bookname,
		"date=" + i.Date,
		"sametypesequence=" + i.SameTypeSequence,
		"description=" + i.Description,
		"encoding=" + i.Encoding,
		"",
		"lang=" + i.Lang,
	}
	n, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	if err != nil {
		return int64(n), fmt.Errorf("writing .ifo: %w", err)
	}
	return int64(n), nil
}

// New parses a descriptor from r. Unknown keys are ignored.
func New(r io.Reader) (*Ifo, error) {
	s := bufio.NewScanner(bufio.NewReader(r))
	if !s.Scan() || s.Text() != Magic {
		return nil, ErrBadMagic
	}

	var i Ifo
	first := true
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%w: line %q", ErrInvalidIfo, line)
		}
		key = strings.TrimRight(key, " ")
		value = strings.TrimLeft(value, " ")
		if first && key != "version" {
			return nil, fmt.Errorf("%w: missing version", ErrInvalidIfo)
		}
		first = false

		var err error
		switch key {
		case "version":
			i.Version = value
		case "wordcount":
			i.WordCount, err = strconv.Atoi(value)
		case "idxfilesize":
			i.IdxFileSize, err = strconv.ParseInt(value, 10, 64)
		case "bookname":
			i.Bookname = value
		case "date":
			i.Date = value
		case "sametypesequence":
			i.SameTypeSequence = value
		case "description":
			i.Description = value
		case "encoding":
			i.Encoding = value
		case "lang":
			i.Lang = value
		}
		if err != nil {
			return nil, fmt.Errorf("%w: bad %s: %v", ErrInvalidIfo, key, err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading .ifo: %w", err)
	}
	if first {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidIfo)
	}

	return &i, nil
}
