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

package sense

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// maxLineSize is the scanner buffer limit for a single record line.
const maxLineSize = 1024 * 1024

// Source is one input stream of sense records tagged with the label of the
// model that produced it.
type Source struct {
	// Label identifies the producer, e.g. "gpt-5-mini". It is used for
	// merge priority and for display inside rendered entries.
	Label string

	// R is the newline-delimited record stream.
	R io.Reader
}

// Stats counts what a Scanner saw. Dropped records are counted, never
// surfaced as errors.
type Stats struct {
	// Read counts non-blank lines per source label.
	Read map[string]int

	// Malformed counts lines that did not decode as a record.
	Malformed int

	// Invalid counts records whose validity flag was explicitly false.
	Invalid int

	// Blank counts valid records with neither a word nor a lemma.
	Blank int

	// Records counts records yielded to the caller.
	Records int
}

// Scanner iterates valid sense records across multiple sources, in source
// order. Invalid, malformed and unkeyable records are skipped and counted.
type Scanner struct {
	sources []Source
	cur     int

	s     *bufio.Scanner
	label string
	rec   Record

	stats Stats
	err   error
}

// NewScanner returns a Scanner over the given sources.
func NewScanner(sources ...Source) *Scanner {
	return &Scanner{
		sources: sources,
		stats: Stats{
			Read: map[string]int{},
		},
	}
}

// Scan advances to the next usable record. It returns false when all
// sources are exhausted or a read error occurred.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for {
		if s.s == nil {
			if s.cur >= len(s.sources) {
				return false
			}
			src := s.sources[s.cur]
			s.s = bufio.NewScanner(src.R)
			s.s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
			s.label = src.Label
		}

		if !s.s.Scan() {
			if err := s.s.Err(); err != nil {
				s.err = fmt.Errorf("reading source %q: %w", s.label, err)
				return false
			}
			s.s = nil
			s.cur++
			continue
		}

		line := bytes.TrimSpace(s.s.Bytes())
		if len(line) == 0 {
			continue
		}
		s.stats.Read[s.label]++

		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			s.stats.Malformed++
			continue
		}
		if !rec.Valid() {
			s.stats.Invalid++
			continue
		}
		rec.normalize()
		if rec.Headword() == "" {
			s.stats.Blank++
			continue
		}

		s.stats.Records++
		s.rec = rec
		return true
	}
}

// Record returns the current record.
func (s *Scanner) Record() Record {
	return s.rec
}

// Label returns the source label of the current record.
func (s *Scanner) Label() string {
	return s.label
}

// Err returns the first read error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Stats returns the counters accumulated so far.
func (s *Scanner) Stats() Stats {
	return s.stats
}
