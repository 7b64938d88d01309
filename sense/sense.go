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

// Package sense implements loading per-word sense records produced by the
// upstream gloss generation stages.
//
// Records arrive as newline-delimited JSON, one record per line, in the
// field layout emitted by the generation stage. Several streams may carry
// records for the same headwords; each stream is tagged with the label of
// the model that produced it.
package sense

import (
	"strings"

	"github.com/k3a/html2text"

	"github.com/szotar-tools/mkstardict/internal/folding"
)

// Record is one model's judgement about one (word, part-of-speech) pairing.
type Record struct {
	// Word is the lowercase surface form.
	Word string `json:"word"`

	// Lemma is the base form. It may equal Word.
	Lemma string `json:"lemma"`

	// POS is a short part-of-speech code, e.g. "NOUN".
	POS string `json:"pos_ai"`

	// POSLabel is the human-readable part-of-speech name shown in rendered
	// entries, e.g. "főnév".
	POSLabel string `json:"pos_ai_hu"`

	// Meaning is the target-language gloss.
	Meaning string `json:"meaning_hu"`

	// ExampleSurface is an example sentence using the surface form.
	ExampleSurface string `json:"example_surface_en"`

	// ExampleLemma is an example sentence using the lemma.
	ExampleLemma string `json:"example_lemma_en"`

	// OK is the upstream validity flag. A record that omits the flag is
	// kept; only an explicit false drops it.
	OK *bool `json:"ok"`
}

// Valid reports whether the record should be used at all.
func (r *Record) Valid() bool {
	return r.OK == nil || *r.OK
}

// Headword returns the display headword: the surface form, falling back to
// the lemma. An empty return means the record cannot be keyed.
func (r *Record) Headword() string {
	if r.Word != "" {
		return r.Word
	}
	return r.Lemma
}

// normalize folds whitespace in all text fields and flattens any markup the
// generating model left in the gloss. Markup must not survive into the data
// file because entry payloads are framed with <k> tags.
func (r *Record) normalize() {
	r.Word = folding.Fold(r.Word)
	r.Lemma = folding.Fold(r.Lemma)
	r.POS = folding.Fold(r.POS)
	r.POSLabel = folding.Fold(r.POSLabel)
	r.ExampleSurface = folding.Fold(r.ExampleSurface)
	r.ExampleLemma = folding.Fold(r.ExampleLemma)

	meaning := r.Meaning
	if strings.Contains(meaning, "<") {
		meaning = html2text.HTML2Text(meaning)
	}
	r.Meaning = folding.Fold(meaning)
}
