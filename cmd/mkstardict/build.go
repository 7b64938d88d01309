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
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/szotar-tools/mkstardict"
	"github.com/szotar-tools/mkstardict/sense"
)

var buildCommand = &cli.Command{
	Name:  "build",
	Usage: "Compile dictionary artifacts from a build manifest",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "manifest",
			Aliases:  []string{"f"},
			Usage:    "read the build manifest from `FILE`",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "write artifacts to `DIR` instead of the manifest's out_dir",
		},
		&cli.BoolFlag{
			Name:  "no-compress",
			Usage: "skip dictzip compression of the .dict file",
		},
		&cli.BoolFlag{
			Name:  "skip-missing",
			Usage: "build with the source files that exist instead of failing",
		},
	},
	Action: runBuild,
}

func runBuild(c *cli.Context) error {
	m, err := loadManifest(c.String("manifest"))
	if err != nil {
		return err
	}
	if out := c.String("out"); out != "" {
		m.OutDir = out
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, nil))

	var sources []sense.Source
	for _, src := range m.Sources {
		f, err := os.Open(src.Path)
		if err != nil {
			if c.Bool("skip-missing") && errors.Is(err, fs.ErrNotExist) {
				logger.Warn("skipping missing source", "label", src.Label, "path", src.Path)
				continue
			}
			return fmt.Errorf("opening source %q: %w", src.Label, err)
		}
		defer f.Close()
		sources = append(sources, sense.Source{Label: src.Label, R: f})
	}

	opts := &mkstardict.Options{
		Dir:           m.OutDir,
		Base:          m.Basename,
		Bookname:      m.Bookname,
		Description:   m.Description,
		Lang:          m.Lang,
		Sources:       sources,
		Priority:      m.Priority,
		DefaultSource: m.DefaultSource,
		Logger:        logger,
	}
	if m.compressEnabled() && !c.Bool("no-compress") {
		opts.Compressor = mkstardict.Dictzip{}
	}

	sum, err := mkstardict.Compile(opts)
	if err != nil {
		return fmt.Errorf("building %q: %w", m.Basename, err)
	}

	printSummary(c, sum)
	return nil
}

func printSummary(c *cli.Context, sum *mkstardict.Summary) {
	tbl := table.New("Metric", "Value").WithWriter(c.App.Writer)

	labels := make([]string, 0, len(sum.Stats.Read))
	for label := range sum.Stats.Read {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		tbl.AddRow("records read ("+label+")", sum.Stats.Read[label])
	}

	tbl.AddRow("malformed lines", sum.Stats.Malformed)
	tbl.AddRow("invalid records", sum.Stats.Invalid)
	tbl.AddRow("blank records", sum.Stats.Blank)
	tbl.AddRow("records rendered", sum.Stats.Records)
	tbl.AddRow("headwords", sum.WordCount)
	tbl.AddRow("index bytes", sum.IdxSize)
	tbl.AddRow("data bytes", sum.DictSize)
	if sum.CompressedPath != "" {
		tbl.AddRow("compressed", sum.CompressedPath)
	}
	tbl.Print()
}
