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

// Package idx implements writing .idx dictionary index files.
//
// Each index record is the UTF-8 headword bytes followed by a null
// terminator and two big-endian 32-bit integers: the byte offset of the
// entry's payload in the .dict file and the payload's byte length. Records
// appear in the order defined by the collate package so that offsets are
// monotonic and the index spans the data file without gaps.
package idx
