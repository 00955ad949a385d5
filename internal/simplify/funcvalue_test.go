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
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/reshape/internal/simplify"
)

func TestFuncValue(t *testing.T) {
	t.Parallel()

	const tmpl = `package test

import "strconv"

var _ = strconv.Itoa

func double(x int) int { return 2 * x }

func show(x int) { println(x) }

func identity[T any](x T) T { return x }

type S struct{}

func (S) M(x int) int { return x }

func _(s S, local func(int) int) {
	_ = %s
}
`

	tests := [...]struct {
		lit  string
		want string // empty when not matched
	}{
		{"func(v int) int { return double(v) }", "double"},
		{"func(v int) { show(v) }", "show"},
		{"func(v int) string { return strconv.Itoa(v) }", "strconv.Itoa"},
		{"func(v int) int { return double(v + 1) }", ""},
		{"func(v int) int { return s.M(v) }", ""},
		{"func(v int) int { return local(v) }", ""},
		{"func(v int) int { return identity(v) }", ""},
		{"func(v int) int64 { return int64(v) }", ""},
		{"func(v int) int { println(); return double(v) }", ""},
		{"func(v int8) int { return double(int(v)) }", ""},
	}

	for _, tt := range tests {
		t.Run(tt.lit, func(t *testing.T) {
			t.Parallel()

			s := load(t, fmt.Sprintf(tmpl, tt.lit))

			lit, _, ok := first[*ast.FuncLit](s)
			require.True(t, ok)

			fun, ok := AnalyzeFuncValue(s.info, lit)
			if tt.want == "" {
				assert.False(t, ok)

				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.want, types.ExprString(fun))
		})
	}
}
