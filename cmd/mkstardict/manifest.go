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

	"github.com/BurntSushi/toml"
)

// ErrInvalidManifest indicates an incomplete build manifest.
var ErrInvalidManifest = fmt.Errorf("%w: invalid manifest", ErrMkstardict)

// Manifest is the TOML build manifest consumed by the build command.
//
//	out_dir = "data/eng-hun-dict"
//	basename = "eng-hun"
//	bookname = "English-Hungarian dictionary"
//	description = "Built from the Animal Farm word list."
//	lang = "en-hu"
//	priority = ["gpt-5-mini", "gemma3:27b"]
//
//	[[source]]
//	label = "gpt-5-mini"
//	path = "data/500_word_senses_openai.jsonl"
type Manifest struct {
	OutDir        string           `toml:"out_dir"`
	Basename      string           `toml:"basename"`
	Bookname      string           `toml:"bookname"`
	Description   string           `toml:"description"`
	Lang          string           `toml:"lang"`
	Priority      []string         `toml:"priority"`
	DefaultSource string           `toml:"default_source"`
	Compress      *bool            `toml:"compress"`
	Sources       []ManifestSource `toml:"source"`
}

// ManifestSource is one input stream declaration.
type ManifestSource struct {
	Label string `toml:"label"`
	Path  string `toml:"path"`
}

// compressEnabled reports whether the manifest requests dictzip
// compression. Missing means enabled.
func (m *Manifest) compressEnabled() bool {
	return m.Compress == nil || *m.Compress
}

// loadManifest reads and validates a build manifest.
func loadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest %q: %w", path, err)
	}

	if m.Basename == "" {
		return nil, fmt.Errorf("%w: missing basename", ErrInvalidManifest)
	}
	if len(m.Sources) == 0 {
		return nil, fmt.Errorf("%w: no sources", ErrInvalidManifest)
	}
	for i, src := range m.Sources {
		if src.Path == "" {
			return nil, fmt.Errorf("%w: source %d missing path", ErrInvalidManifest, i)
		}
	}
	if m.OutDir == "" {
		m.OutDir = "."
	}

	return &m, nil
}
