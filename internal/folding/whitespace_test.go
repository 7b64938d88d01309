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

package folding

import (
	"testing"
)

// TestFold tests Fold.
func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    string
		want string
	}{
		{
			name: "empty",
			s:    "",
			want: "",
		},
		{
			name: "all whitespace",
			s:    " \t\n ",
			want: "",
		},
		{
			name: "leading and trailing",
			s:    " \tdisznó \n",
			want: "disznó",
		},
		{
			name: "internal spans",
			s:    "The pig\t\t ran.",
			want: "The pig ran.",
		},
		{
			name: "unicode whitespace",
			s:    "a　b",
			want: "a b",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if want, got := test.want, Fold(test.s); want != got {
				t.Errorf("Fold(%q); want: %q, got: %q", test.s, want, got)
			}
		})
	}
}
