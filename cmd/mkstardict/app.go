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
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	// ExitCodeSuccess is the successful exit code.
	ExitCodeSuccess int = iota

	// ExitCodeUsageError is the exit code for usage errors.
	ExitCodeUsageError

	// ExitCodeUnknownError is the exit code for unknown errors.
	ExitCodeUnknownError

	// ExitCodeCheckFailed is the exit code when a dictionary fails
	// verification.
	ExitCodeCheckFailed
)

// ErrMkstardict is a parent error for all command errors.
var ErrMkstardict = errors.New("mkstardict")

// ErrUsage is a command usage error.
var ErrUsage = fmt.Errorf("%w: usage", ErrMkstardict)

// ErrCheckFailed indicates an inconsistent dictionary.
var ErrCheckFailed = fmt.Errorf("%w: check failed", ErrMkstardict)

//nolint:gochecknoinits // init needed for the global flag override.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli`
	// handles the flag with the root command such that it takes a command
	// name argument but we want `mkstardict --help foo` to print the help
	// rather than a "command foo not found" error.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Compile StarDict dictionaries from word sense records.",
		Description: strings.Join([]string{
			"StarDict dictionary compiler written in Go.",
			"http://github.com/szotar-tools/mkstardict",
		}, "\n"),
		Flags: []cli.Flag{
			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
		},
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			buildCommand,
			checkCommand,
			versionCommand,
		},
	}
}
