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

	"golang.org/x/tools/go/ast/inspector"
)

// ConditionalAssignmentInfo destructures if c { x = a } else { x = b }.
type ConditionalAssignmentInfo struct {
	If        *ast.IfStmt
	Condition ast.Expr
	Left      ast.Expr
	Tok       token.Token
	WhenTrue  ast.Expr
	WhenFalse ast.Expr
}

// ConditionalAssignment matches an if / else where each branch consists of a single
// assignment to the same target with the same operator.
//
// The targets are compared by spelling only; callers needing identity must compare
// the resolved objects.
func ConditionalAssignment(c inspector.Cursor, opts Options) (ConditionalAssignmentInfo, bool) {
	ie, ok := SimpleIfElse(c, opts)
	if !ok {
		return ConditionalAssignmentInfo{}, false
	}

	lt, tokt, rt, ok := singleAssignment(ie.WhenTrue, opts)
	if !ok {
		return ConditionalAssignmentInfo{}, false
	}

	lf, tokf, rf, ok := singleAssignment(ie.WhenFalse, opts)
	if !ok || tokt != tokf || !sameSpelling(lt, lf) {
		return ConditionalAssignmentInfo{}, false
	}

	return ConditionalAssignmentInfo{
		If:        ie.Node,
		Condition: ie.Condition,
		Left:      lt,
		Tok:       tokt,
		WhenTrue:  rt,
		WhenFalse: rf,
	}, true
}

func singleAssignment(b *ast.BlockStmt, opts Options) (left ast.Expr, tok token.Token, right ast.Expr, ok bool) {
	if len(b.List) != 1 {
		return nil, token.ILLEGAL, nil, false
	}

	a, ok := b.List[0].(*ast.AssignStmt)
	if !ok || len(a.Lhs) != 1 || len(a.Rhs) != 1 || a.Tok == token.DEFINE {
		return nil, token.ILLEGAL, nil, false
	}

	left, right = a.Lhs[0], opts.walk(a.Rhs[0])
	if !opts.check(left) || !opts.check(right) {
		return nil, token.ILLEGAL, nil, false
	}

	return left, a.Tok, right, true
}

// sameSpelling compares identifier and selector chains by name.
func sameSpelling(x, y ast.Expr) bool {
	switch x := x.(type) {
	case *ast.Ident:
		y, ok := y.(*ast.Ident)

		return ok && x.Name == y.Name && x.Name != "_"

	case *ast.SelectorExpr:
		y, ok := y.(*ast.SelectorExpr)

		return ok && x.Sel.Name == y.Sel.Name && sameSpelling(x.X, y.X)

	case *ast.StarExpr:
		y, ok := y.(*ast.StarExpr)

		return ok && sameSpelling(x.X, y.X)

	case *ast.ParenExpr:
		y, ok := y.(*ast.ParenExpr)

		return ok && sameSpelling(x.X, y.X)
	}

	return false
}
