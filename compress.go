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

package mkstardict

import (
	"fmt"
	"io"
	"os"

	"github.com/ianlewis/go-dictzip"
)

// Compressor compresses a written artifact, producing a companion file
// next to it. The original file is left in place.
type Compressor interface {
	Compress(path string) error
}

// Dictzip compresses .dict files with the dictzip format, producing
// path + ".dz". Unlike plain gzip, dictzip output supports the random
// access dictionary readers need.
type Dictzip struct{}

// Compress implements [Compressor].
func (Dictzip) Compress(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer in.Close()

	dzPath := path + ".dz"
	out, err := os.Create(dzPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", dzPath, err)
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("closing %q: %w", dzPath, closeErr)
		}
		if err != nil {
			os.Remove(dzPath)
		}
	}()

	z, err := dictzip.NewWriter(out)
	if err != nil {
		return fmt.Errorf("creating dictzip writer: %w", err)
	}
	if _, err := io.Copy(z, in); err != nil {
		return fmt.Errorf("compressing %q: %w", path, err)
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("finishing %q: %w", dzPath, err)
	}
	return nil
}
