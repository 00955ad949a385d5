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
	"go/ast"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/reshape/internal/rewrite"
	"fillmore-labs.com/reshape/internal/testsource"
)

type source struct {
	src  string
	file *ast.File
	in   *inspector.Inspector
	pkg  *types.Package
	info *types.Info
	doc  rewrite.Document
}

func load(t *testing.T, src string) source {
	t.Helper()

	fset, f, in := testsource.ParseFile(t, src)
	pkg, info := testsource.Check(t, fset, f)

	doc, err := rewrite.NewDocument(fset.File(f.Pos()), []byte(src))
	require.NoError(t, err)

	return source{src: src, file: f, in: in, pkg: pkg, info: info, doc: doc}
}

// first returns the outermost node of type T.
func first[T ast.Node](s source) (T, inspector.Cursor, bool) {
	var zero T
	for c := range s.in.Root().Preorder(zero) {
		return c.Node().(T), c, true
	}

	return zero, inspector.Cursor{}, false
}

// assignedText returns the right hand side of the first blank assignment in the formatted source.
func assignedText(t *testing.T, src []byte) string {
	t.Helper()

	for line := range strings.Lines(string(src)) {
		if text, ok := strings.CutPrefix(strings.TrimSpace(line), "_ = "); ok {
			return text
		}
	}

	t.Fatal("No assignment found")

	return ""
}

func lastBody(f *ast.File) *ast.BlockStmt {
	return f.Decls[len(f.Decls)-1].(*ast.FuncDecl).Body
}
