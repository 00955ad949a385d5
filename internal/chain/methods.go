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

package chain

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/reshape/internal/astutil"
)

// Methods answers whether methods declared in the analyzed package return their receiver.
type Methods struct {
	info  *types.Info
	files []*ast.File
	decls map[*types.Func]*ast.FuncDecl
}

// NewMethods creates a [Methods] for the files of a package. The files are
// indexed on first use.
func NewMethods(info *types.Info, files []*ast.File) *Methods {
	return &Methods{info: info, files: files}
}

// ReturnsReceiver reports whether every return statement of fn returns its
// unmodified receiver. Methods declared outside the package are unknown and
// reported as false.
func (m *Methods) ReturnsReceiver(fn *types.Func) bool {
	if m == nil || fn == nil {
		return false
	}

	if m.decls == nil {
		m.index()
	}

	decl, ok := m.decls[fn.Origin()]
	if !ok || decl.Body == nil || decl.Recv == nil || len(decl.Recv.List) != 1 {
		return false
	}

	names := decl.Recv.List[0].Names
	if len(names) != 1 {
		return false
	}

	recv, ok := m.info.Defs[names[0]].(*types.Var)
	if !ok {
		return false
	}

	returns := 0
	fluent := true

	ast.Inspect(decl.Body, func(n ast.Node) bool {
		if !fluent {
			return false
		}

		switch n := n.(type) {
		case *ast.FuncLit:
			// A closure may change the receiver, its returns are not ours.
			fluent = !astutil.Mentions(m.info, n, recv)

			return false

		case *ast.ReturnStmt:
			returns++
			fluent = len(n.Results) == 1 && m.isVar(n.Results[0], recv)

		case *ast.AssignStmt:
			for _, lhs := range n.Lhs {
				if m.isVar(lhs, recv) {
					fluent = false
				}
			}

		case *ast.IncDecStmt:
			fluent = !m.isVar(n.X, recv)

		case *ast.UnaryExpr:
			fluent = n.Op != token.AND || !m.isVar(n.X, recv)
		}

		return fluent
	})

	return fluent && returns > 0
}

func (m *Methods) index() {
	m.decls = make(map[*types.Func]*ast.FuncDecl)

	for _, f := range m.files {
		for _, d := range f.Decls {
			decl, ok := d.(*ast.FuncDecl)
			if !ok || decl.Recv == nil {
				continue
			}

			if fn, ok := m.info.Defs[decl.Name].(*types.Func); ok {
				m.decls[fn] = decl
			}
		}
	}
}

func (m *Methods) isVar(e ast.Expr, v *types.Var) bool {
	id, ok := ast.Unparen(e).(*ast.Ident)

	return ok && m.info.Uses[id] == v
}
