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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/szotar-tools/mkstardict/dict"
	"github.com/szotar-tools/mkstardict/entry"
	"github.com/szotar-tools/mkstardict/idx"
	"github.com/szotar-tools/mkstardict/ifo"
	"github.com/szotar-tools/mkstardict/sense"
)

// SameTypeSequence is the fixed entry data layout the compiler produces:
// one XDXF-style text payload per entry.
const SameTypeSequence = "x"

// Encoding is the fixed encoding label recorded in the .ifo file.
const Encoding = "UTF-8"

var (
	// ErrNoInput indicates that no usable input was configured.
	ErrNoInput = errors.New("no input data")

	// ErrInvalidOptions indicates incomplete build options.
	ErrInvalidOptions = errors.New("invalid options")
)

// Options configure one dictionary build.
type Options struct {
	// Dir is the output directory. It is created if missing.
	Dir string

	// Base is the artifact base filename, e.g. "eng-hun" produces
	// eng-hun.ifo, eng-hun.idx and eng-hun.dict.
	Base string

	// Bookname is the dictionary title.
	Bookname string

	// Description is the free-text dictionary description.
	Description string

	// Lang is the language-pair code, e.g. "en-hu".
	Lang string

	// Sources are the input record streams, read in order.
	Sources []sense.Source

	// Priority lists source labels from highest to lowest priority for
	// block ordering within an entry.
	Priority []string

	// DefaultSource is the source label omitted from rendered entries.
	DefaultSource string

	// Compressor, if non-nil, compresses the .dict file after a
	// successful build. Compression failure does not fail the build.
	Compressor Compressor

	// Logger is the build logger. Defaults to slog.Default.
	Logger *slog.Logger

	// Now returns the generation time recorded in the .ifo file.
	// Defaults to time.Now. Tests pin it for reproducible output.
	Now func() time.Time
}

// Summary reports what a completed build produced.
type Summary struct {
	// WordCount is the number of dictionary entries.
	WordCount int

	// IdxSize and DictSize are the artifact byte sizes.
	IdxSize  int64
	DictSize int64

	// Stats are the input counters.
	Stats sense.Stats

	// IfoPath, IdxPath and DictPath are the written artifacts.
	IfoPath  string
	IdxPath  string
	DictPath string

	// CompressedPath is the .dict.dz companion, empty when compression
	// was disabled or failed.
	CompressedPath string
}

// Compile runs one build: load, aggregate, sort and serialize. The three
// artifacts are written to temp files and renamed into place only after
// all of them are complete, so a failed run leaves no partial release.
func Compile(opts *Options) (*Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if opts.Base == "" {
		return nil, fmt.Errorf("%w: missing base filename", ErrInvalidOptions)
	}
	if len(opts.Sources) == 0 {
		return nil, ErrNoInput
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	s := sense.NewScanner(opts.Sources...)
	agg := entry.NewAggregator(opts.Priority, opts.DefaultSource)
	for s.Scan() {
		rec := s.Record()
		agg.Add(&rec, s.Label())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	stats := s.Stats()

	entries := agg.Entries()
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no usable records", ErrNoInput)
	}
	logger.Info("aggregated entries",
		"records", stats.Records,
		"malformed", stats.Malformed,
		"invalid", stats.Invalid,
		"headwords", len(entries))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	sum := &Summary{
		WordCount: len(entries),
		Stats:     stats,
		IfoPath:   filepath.Join(dir, opts.Base+".ifo"),
		IdxPath:   filepath.Join(dir, opts.Base+".idx"),
		DictPath:  filepath.Join(dir, opts.Base+".dict"),
	}

	if err := writeArtifacts(opts, entries, now(), sum); err != nil {
		return nil, err
	}

	if opts.Compressor != nil {
		if err := opts.Compressor.Compress(sum.DictPath); err != nil {
			// The uncompressed artifacts remain a valid release.
			logger.Warn("compressing dict file failed", "path", sum.DictPath, "error", err)
		} else {
			sum.CompressedPath = sum.DictPath + ".dz"
		}
	}

	logger.Info("compiled dictionary",
		"ifo", sum.IfoPath,
		"wordcount", sum.WordCount,
		"idxfilesize", sum.IdxSize,
		"dictsize", sum.DictSize)
	return sum, nil
}

// writeArtifacts serializes the collated entries into the three artifact
// files, committing them with renames.
func writeArtifacts(opts *Options, entries []*entry.Entry, genTime time.Time, sum *Summary) (err error) {
	dir := filepath.Dir(sum.DictPath)

	var tmps []*os.File
	committed := false
	defer func() {
		for _, f := range tmps {
			f.Close()
			if !committed {
				os.Remove(f.Name())
			}
		}
	}()

	tmp := func(base string) (*os.File, error) {
		f, err := os.CreateTemp(dir, base+".tmp*")
		if err != nil {
			return nil, fmt.Errorf("creating temp file: %w", err)
		}
		tmps = append(tmps, f)
		return f, nil
	}

	dictTmp, err := tmp(opts.Base + ".dict")
	if err != nil {
		return err
	}
	idxTmp, err := tmp(opts.Base + ".idx")
	if err != nil {
		return err
	}
	ifoTmp, err := tmp(opts.Base + ".ifo")
	if err != nil {
		return err
	}

	dw := dict.NewWriter(dictTmp)
	iw := idx.NewWriter(idxTmp)
	for _, e := range entries {
		offset, size, err := dw.WriteEntry(e.Headword, e.Definition())
		if err != nil {
			return err
		}
		if err := iw.Add(e.Headword, offset, size); err != nil {
			return err
		}
	}
	if err := dw.Flush(); err != nil {
		return err
	}
	if err := iw.Flush(); err != nil {
		return err
	}
	sum.DictSize = dw.Size()
	sum.IdxSize = iw.Size()

	meta := &ifo.Ifo{
		Version:          ifo.Version,
		WordCount:        iw.Count(),
		IdxFileSize:      iw.Size(),
		Bookname:         opts.Bookname,
		Date:             genTime.Format("2006.01.02"),
		SameTypeSequence: SameTypeSequence,
		Description:      opts.Description,
		Encoding:         Encoding,
		Lang:             opts.Lang,
	}
	if _, err := meta.WriteTo(ifoTmp); err != nil {
		return err
	}

	for _, f := range tmps {
		if err := f.Chmod(0o644); err != nil {
			return fmt.Errorf("setting permissions on %q: %w", f.Name(), err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %q: %w", f.Name(), err)
		}
	}

	// The .ifo is renamed last since it is the file readers open first.
	renames := []struct{ from, to string }{
		{dictTmp.Name(), sum.DictPath},
		{idxTmp.Name(), sum.IdxPath},
		{ifoTmp.Name(), sum.IfoPath},
	}
	for _, r := range renames {
		if err := os.Rename(r.from, r.to); err != nil {
			return fmt.Errorf("renaming %q: %w", r.to, err)
		}
	}
	committed = true
	return nil
}
