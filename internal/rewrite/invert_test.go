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

package rewrite_test

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/reshape/internal/rewrite"
	"fillmore-labs.com/reshape/internal/testsource"
)

func TestInvert(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name, cond, want string
	}{
		{"identifier", "a", "!a"},
		{"true", "true", "false"},
		{"not", "!a", "a"},
		{"not parenthesized", "!(a && b)", "(a && b)"},
		{"equal", "i == 1", "i != 1"},
		{"less", "i < 1", "i >= 1"},
		{"float less", "f < 1", "!(f < 1)"},
		{"string greater", "s > \"x\"", "s <= \"x\""},
		{"and", "a && b", "!a || !b"},
		{"or", "a || i > 2", "!a && i <= 2"},
		{"or of and", "a || b && c", "!a && (!b || !c)"},
		{"parenthesized", "(a || b) && c", "(!a && !b) || !c"},
		{"call", "g()", "!g()"},
		{"spacing", "i  ==  1", "i  !=  1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			source := "package test\n\nfunc g() bool { return false }\n\nfunc _(a, b, c bool, i int, f float64, s string) bool {\n\treturn " + tt.cond + "\n}\n"

			fset, f, _ := testsource.ParseFile(t, source)
			_, info := testsource.Check(t, fset, f)

			d, err := NewDocument(fset.File(f.Pos()), []byte(source))
			require.NoError(t, err)

			fn := f.Decls[1].(*ast.FuncDecl)
			cond := fn.Body.List[0].(*ast.ReturnStmt).Results[0]

			assert.Equal(t, tt.want, d.Invert(info, cond))
		})
	}
}
