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

// Package mkstardict compiles word sense records into StarDict
// dictionaries in pure Go.
//
// A dictionary release is three files:
//  1. An .ifo file with metadata about the dictionary.
//  2. An .idx file mapping headwords to byte ranges in the .dict file.
//  3. A .dict file with the serialized entry payloads. It may be
//     compressed with the dictzip format into a .dict.dz companion.
//
// The compiler reads one or more JSONL streams of sense records, merges
// them per headword with configurable source priority, orders headwords by
// the byte-level collation the format requires, and writes all three files
// atomically in one pass. Rebuilding from unchanged inputs yields
// byte-identical .idx and .dict files.
//
// More info on the dictionary format can be found at this URL:
// https://github.com/huzheng001/stardict-3/blob/master/dict/doc/StarDictFileFormat
package mkstardict
