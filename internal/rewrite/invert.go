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

package rewrite

import (
	"go/ast"
	"go/token"
	"go/types"
)

var negations = map[token.Token]token.Token{
	token.EQL: token.NEQ,
	token.NEQ: token.EQL,
	token.LSS: token.GEQ,
	token.GTR: token.LEQ,
	token.LEQ: token.GTR,
	token.GEQ: token.LSS,
}

// Invert returns the source text of the negation of cond, keeping the
// spelling and spacing of its operands.
//
// Logical operators are inverted with De Morgan's laws, comparisons by negating
// the operator and negations by dropping the !. Ordered comparisons of floating
// point operands are wrapped in !(...) instead, since they are false for NaN.
func (d Document) Invert(info *types.Info, cond ast.Expr) string {
	switch e := cond.(type) {
	case *ast.Ident:
		if info == nil || isUniverseBool(info, e) {
			switch e.Name {
			case "true":
				return "false"

			case "false":
				return "true"
			}
		}

		return "!" + e.Name

	case *ast.ParenExpr:
		if b, ok := e.X.(*ast.BinaryExpr); ok {
			return "(" + d.Invert(info, b) + ")"
		}

		return "!" + d.NodeText(e)

	case *ast.UnaryExpr:
		if e.Op == token.NOT {
			return d.Text(e.X.Pos(), e.End())
		}

	case *ast.BinaryExpr:
		switch e.Op {
		case token.LAND, token.LOR:
			return d.invertLogical(info, e)

		case token.EQL, token.NEQ:
			return d.replaceOperator(e, negations[e.Op])

		case token.LSS, token.GTR, token.LEQ, token.GEQ:
			if info != nil && ordered(info, e.X) && ordered(info, e.Y) {
				return d.replaceOperator(e, negations[e.Op])
			}
		}

		return "!(" + d.NodeText(e) + ")"

	case *ast.CallExpr, *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr,
		*ast.StarExpr, *ast.TypeAssertExpr:
		return "!" + d.NodeText(e)
	}

	return "!(" + d.NodeText(cond) + ")"
}

func (d Document) invertLogical(info *types.Info, e *ast.BinaryExpr) string {
	op := token.LOR
	if e.Op == token.LOR {
		op = token.LAND
	}

	x, y := d.Invert(info, e.X), d.Invert(info, e.Y)

	// Inverting a || (b && c) yields !a && (!b || !c).
	if op == token.LAND {
		if isOp(e.X, token.LAND) {
			x = "(" + x + ")"
		}

		if isOp(e.Y, token.LAND) {
			y = "(" + y + ")"
		}
	}

	opEnd := e.OpPos + token.Pos(len(e.Op.String()))

	return x + d.Text(e.X.End(), e.OpPos) + op.String() + d.Text(opEnd, e.Y.Pos()) + y
}

func (d Document) replaceOperator(e *ast.BinaryExpr, op token.Token) string {
	opEnd := e.OpPos + token.Pos(len(e.Op.String()))

	return d.Text(e.Pos(), e.OpPos) + op.String() + d.Text(opEnd, e.End())
}

func isOp(e ast.Expr, op token.Token) bool {
	b, ok := e.(*ast.BinaryExpr)

	return ok && b.Op == op
}

func isUniverseBool(info *types.Info, id *ast.Ident) bool {
	obj := info.ObjectOf(id)

	return obj != nil && obj == types.Universe.Lookup(id.Name)
}

// ordered reports whether negating an ordered comparison of e is exact.
func ordered(info *types.Info, e ast.Expr) bool {
	t := info.TypeOf(e)
	if t == nil {
		return false
	}

	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Info()&(types.IsInteger|types.IsString) != 0
}
