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

// Package entry aggregates sense records into dictionary entries.
//
// Records from any number of sources are grouped by headword. Each record
// renders to one definition block; blocks for the same headword are ordered
// by a configured source priority and joined with a blank line. Example
// sentences are deduplicated per headword across all sources, first
// occurrence wins.
package entry

import (
	"sort"
	"strings"

	"github.com/szotar-tools/mkstardict/collate"
	"github.com/szotar-tools/mkstardict/sense"
)

// Block is the rendered definition text contributed by one record from one
// source. Text is never empty.
type Block struct {
	// Source is the label of the producing source.
	Source string

	// Text is the rendered block: a meaning line followed by zero or more
	// example lines.
	Text string
}

// Entry is one dictionary entry keyed by headword.
type Entry struct {
	// Headword is the entry key.
	Headword string

	// Blocks are the definition blocks, in source priority order.
	Blocks []Block
}

// Definition returns the full definition text: blocks joined by one blank
// line.
func (e *Entry) Definition() string {
	texts := make([]string, 0, len(e.Blocks))
	for _, b := range e.Blocks {
		texts = append(texts, b.Text)
	}
	return strings.Join(texts, "\n\n")
}

// Aggregator merges sense records from multiple sources into entries. A
// single-source build is just the one-element case.
type Aggregator struct {
	// rank maps source labels to their priority. Lower is better; sources
	// not present rank after all ranked ones in encounter order.
	rank map[string]int

	// defaultLabel is the source label omitted from rendered meaning lines.
	defaultLabel string

	entries map[string]*Entry

	// examples tracks example sentences already rendered per headword.
	examples map[string]map[string]struct{}
}

// NewAggregator returns a new Aggregator. priority lists source labels from
// highest to lowest priority. Blocks from the source labeled defaultLabel
// render without a source suffix.
func NewAggregator(priority []string, defaultLabel string) *Aggregator {
	rank := make(map[string]int, len(priority))
	for i, label := range priority {
		if _, ok := rank[label]; !ok {
			rank[label] = i
		}
	}
	return &Aggregator{
		rank:         rank,
		defaultLabel: defaultLabel,
		entries:      map[string]*Entry{},
		examples:     map[string]map[string]struct{}{},
	}
}

// Add renders one record from the given source into its headword's entry.
// Records with neither a word nor a lemma are ignored.
func (a *Aggregator) Add(rec *sense.Record, source string) {
	headword := rec.Headword()
	if headword == "" {
		return
	}

	e, ok := a.entries[headword]
	if !ok {
		e = &Entry{Headword: headword}
		a.entries[headword] = e
		a.examples[headword] = map[string]struct{}{}
	}

	e.Blocks = append(e.Blocks, Block{
		Source: source,
		Text:   a.render(rec, headword, source),
	})
}

// render produces the block text for one record.
func (a *Aggregator) render(rec *sense.Record, headword, source string) string {
	var lines []string

	meaning := rec.Meaning
	if meaning == "" {
		meaning = headword
	}
	if meaning != "" {
		line := meaning
		if rec.POSLabel != "" {
			line += " (" + rec.POSLabel + ")"
		}
		if source != "" && source != a.defaultLabel {
			line += " (" + source + ")"
		}
		lines = append(lines, line)
	}

	// Example sentences are deduplicated per headword in processing order,
	// regardless of which source produced them.
	seen := a.examples[headword]
	for _, example := range []string{rec.ExampleSurface, rec.ExampleLemma} {
		if example == "" {
			continue
		}
		if _, ok := seen[example]; ok {
			continue
		}
		seen[example] = struct{}{}
		lines = append(lines, example)
	}

	if len(lines) == 0 {
		fallback := headword
		if fallback == "" {
			fallback = "<?>"
		}
		lines = append(lines, fallback)
	}

	return strings.Join(lines, "\n")
}

// Entries returns the aggregated entries with blocks in source priority
// order and headwords in collate order.
func (a *Aggregator) Entries() []*Entry {
	entries := make([]*Entry, 0, len(a.entries))
	for _, e := range a.entries {
		a.sortBlocks(e)
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return collate.Less(entries[i].Headword, entries[j].Headword)
	})
	return entries
}

// sortBlocks orders an entry's blocks by source priority, keeping insertion
// order among equal ranks.
func (a *Aggregator) sortBlocks(e *Entry) {
	unranked := len(a.rank)
	rankOf := func(label string) int {
		if r, ok := a.rank[label]; ok {
			return r
		}
		return unranked
	}
	sort.SliceStable(e.Blocks, func(i, j int) bool {
		return rankOf(e.Blocks[i].Source) < rankOf(e.Blocks[j].Source)
	})
}
