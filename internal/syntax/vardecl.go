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

package syntax

import (
	"go/ast"
	"go/token"
)

// SingleVariableDeclarationInfo destructures a declaration of exactly one local variable.
type SingleVariableDeclarationInfo struct {
	Node  ast.Stmt
	Name  *ast.Ident
	Type  ast.Expr // nil unless declared with var x T = v
	Value ast.Expr
	// Define is true for the short form x := v.
	Define bool
}

// SingleVariableDeclaration matches x := v or an ungrouped var x [T] = v.
func SingleVariableDeclaration(stmt ast.Stmt, opts Options) (SingleVariableDeclarationInfo, bool) {
	switch n := stmt.(type) {
	case *ast.AssignStmt:
		if n == nil || n.Tok != token.DEFINE || len(n.Lhs) != 1 || len(n.Rhs) != 1 {
			break
		}

		name, ok := n.Lhs[0].(*ast.Ident)
		value := opts.walk(n.Rhs[0])

		if !ok || !opts.check(name) || !opts.check(value) {
			break
		}

		return SingleVariableDeclarationInfo{Node: n, Name: name, Value: value, Define: true}, true

	case *ast.DeclStmt:
		if n == nil {
			break
		}

		g, ok := n.Decl.(*ast.GenDecl)
		if !ok || g.Tok != token.VAR || g.Lparen.IsValid() || len(g.Specs) != 1 {
			break
		}

		spec, ok := g.Specs[0].(*ast.ValueSpec)
		if !ok || len(spec.Names) != 1 || len(spec.Values) != 1 {
			break
		}

		name, value := spec.Names[0], opts.walk(spec.Values[0])
		if !opts.check(name) || !opts.check(value) {
			break
		}

		if spec.Type != nil && !opts.check(spec.Type) {
			break
		}

		return SingleVariableDeclarationInfo{Node: n, Name: name, Type: spec.Type, Value: value}, true
	}

	return SingleVariableDeclarationInfo{}, false
}
