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

// Command mkstardict compiles StarDict dictionaries from JSONL word sense
// record streams.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	err := newApp().Run(args)
	if err == nil {
		return ExitCodeSuccess
	}
	fmt.Fprintln(os.Stderr, err)
	switch {
	case errors.Is(err, ErrUsage):
		return ExitCodeUsageError
	case errors.Is(err, ErrCheckFailed):
		return ExitCodeCheckFailed
	}
	return ExitCodeUnknownError
}
