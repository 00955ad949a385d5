// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package simplify_test

import (
	"fmt"
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/reshape/internal/simplify"
)

func TestNilCheck(t *testing.T) {
	t.Parallel()

	const tmpl = `package test

func _(s []int, m map[string]int, c chan int, p *int, a bool) {
	_ = %s
}
`

	tests := [...]struct {
		expr string
		want string // empty when not matched
	}{
		{"s != nil && len(s) > 0", "len(s) > 0"},
		{"s == nil || len(s) == 0", "len(s) == 0"},
		{"m != nil && len(m) != 0", "len(m) != 0"},
		{"c != nil && len(c) > 0", "len(c) > 0"},
		{"s != nil && 0 < len(s)", "0 < len(s)"},
		{"nil != s && len(s) > 1", "len(s) > 1"},
		{"a && s != nil && len(s) > 0", "a && len(s) > 0"},
		{"(s != nil) && len(s) > 0", "len(s) > 0"},
		{"s == nil || len(s) < 1", "len(s) < 1"},
		{"s != nil && len(s) >= 0", ""},
		{"s == nil || len(s) > 0", ""},
		{"s != nil || len(s) > 0", ""},
		{"s != nil && len(m) > 0", ""},
		{"p != nil && *p > 0", ""},
		{"s != nil && len(s) > len(m)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			s := load(t, fmt.Sprintf(tmpl, tt.expr))

			n, _, ok := first[*ast.BinaryExpr](s)
			require.True(t, ok)

			r, ok := AnalyzeNilCheck(s.info, n)
			if tt.want == "" {
				assert.False(t, ok)

				return
			}

			require.True(t, ok)

			doc, err := r.Fix(s.doc)
			require.NoError(t, err)

			got, err := doc.Apply()
			require.NoError(t, err)

			assert.Equal(t, tt.want, assignedText(t, got))
		})
	}
}
