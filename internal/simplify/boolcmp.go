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

package simplify

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/reshape/internal/astutil"
	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/report"
	"fillmore-labs.com/reshape/internal/rewrite"
	"fillmore-labs.com/reshape/internal/syntax"
)

// BoolComparison is a comparison of a boolean operand with true or false.
type BoolComparison struct {
	Node    *ast.BinaryExpr
	Operand ast.Expr
	Negate  bool
}

// AnalyzeBoolComparison matches e == true, e != false, e == false and e != true
// in either operand order.
func AnalyzeBoolComparison(info *types.Info, n *ast.BinaryExpr) (BoolComparison, bool) {
	if n.Op != token.EQL && n.Op != token.NEQ {
		return BoolComparison{}, false
	}

	operand, lit := n.X, n.Y

	value, ok := universeBool(info, lit)
	if !ok {
		operand, lit = lit, operand
		if value, ok = universeBool(info, lit); !ok {
			return BoolComparison{}, false
		}
	}

	if !plainBool(info.TypeOf(n)) || !plainBool(info.TypeOf(operand)) {
		return BoolComparison{}, false
	}

	return BoolComparison{Node: n, Operand: operand, Negate: value != (n.Op == token.EQL)}, true
}

// Fix replaces the comparison with the operand or its negation.
func (b BoolComparison) Fix(doc rewrite.Document) (rewrite.Document, error) {
	if !b.Negate {
		return doc.ReplaceNode(b.Node, doc.NodeText(b.Operand))
	}

	return doc.ReplaceNode(b.Node, negate(doc, b.Operand))
}

// CheckBoolComparison reports comparisons with boolean literals.
func CheckBoolComparison(ctx context.Context, p *report.Pass, n *ast.BinaryExpr) {
	b, ok := AnalyzeBoolComparison(p.TypesInfo, n)
	if !ok {
		return
	}

	if p.File.HasComments(n.Pos(), n.End()) {
		p.Declined(ctx, config.BoolCompare, n, "Comments in comparison")

		return
	}

	doc, ok := p.Document(ctx, n)
	if !ok {
		return
	}

	fixed, err := b.Fix(doc)
	if err != nil {
		p.Declined(ctx, config.BoolCompare, n, "Can't simplify comparison", "error", err)

		return
	}

	message := "comparison with a boolean literal can be simplified"
	if v, ok := syntax.NilCheck(n, p.TypesInfo, syntax.ValidProperty, syntax.DefaultOptions); ok {
		message = "validity check of " + types.ExprString(v.Expression) + " can be simplified"
	}

	p.Report(config.BoolCompare, n, message, fixed)
}

func universeBool(info *types.Info, e ast.Expr) (value, ok bool) {
	value, ok = astutil.IsBoolLiteral(e)
	if !ok {
		return false, false
	}

	id, _ := astutil.WalkDownParentheses(e).(*ast.Ident)

	return value, astutil.IsUniverse(info, id)
}

// plainBool accepts bool and untyped bool, but not named boolean types.
func plainBool(t types.Type) bool {
	b, ok := t.(*types.Basic)

	return ok && (b.Kind() == types.Bool || b.Kind() == types.UntypedBool)
}

// negate prefixes e with the not operator, removing a double negation.
func negate(doc rewrite.Document, e ast.Expr) string {
	switch x := e.(type) {
	case *ast.UnaryExpr:
		if x.Op == token.NOT {
			return doc.NodeText(x.X)
		}

	case *ast.Ident, *ast.ParenExpr, *ast.SelectorExpr, *ast.CallExpr, *ast.IndexExpr, *ast.IndexListExpr:
		return "!" + doc.NodeText(e)
	}

	return "!(" + doc.NodeText(e) + ")"
}
