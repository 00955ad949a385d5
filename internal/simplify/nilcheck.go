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
	"go/constant"
	"go/token"
	"go/types"

	"fillmore-labs.com/reshape/internal/astutil"
	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/report"
	"fillmore-labs.com/reshape/internal/rewrite"
	"fillmore-labs.com/reshape/internal/syntax"
)

// RedundantNilCheck is a nil check followed by a len comparison that implies it.
type RedundantNilCheck struct {
	Node  *ast.BinaryExpr
	Check ast.Expr // the nil check as written, including parentheses
	Value ast.Expr
}

// AnalyzeNilCheck matches x != nil && len(x) > 0 and x == nil || len(x) == 0,
// where the len comparison gives the same result for a nil x.
func AnalyzeNilCheck(info *types.Info, n *ast.BinaryExpr) (RedundantNilCheck, bool) {
	var kind syntax.NilCheckKind

	switch n.Op {
	case token.LAND:
		kind = syntax.NotEqualsToNil

	case token.LOR:
		kind = syntax.EqualsToNil

	default:
		return RedundantNilCheck{}, false
	}

	// a && x != nil && len(x) > 0 is (a && x != nil) && len(x) > 0
	check := n.X
	if b, ok := check.(*ast.BinaryExpr); ok && b.Op == n.Op {
		check = b.Y
	}

	nc, ok := syntax.NilCheck(check, info, kind, syntax.DefaultOptions)
	if !ok || !astutil.SideEffectFree(info, nc.Expression) || !nilable(info.TypeOf(nc.Expression)) {
		return RedundantNilCheck{}, false
	}

	holds, ok := lenPredicate(info, n.Y, nc.Expression)
	if !ok || holds != (n.Op == token.LOR) {
		return RedundantNilCheck{}, false
	}

	return RedundantNilCheck{Node: n, Check: check, Value: nc.Expression}, true
}

// Fix removes the nil check and the operator following it.
func (r RedundantNilCheck) Fix(doc rewrite.Document) (rewrite.Document, error) {
	return doc.Delete(r.Check.Pos(), r.Node.Y.Pos())
}

// CheckNilCheck reports nil checks implied by the following len comparison.
func CheckNilCheck(ctx context.Context, p *report.Pass, n *ast.BinaryExpr) {
	r, ok := AnalyzeNilCheck(p.TypesInfo, n)
	if !ok {
		return
	}

	if p.File.HasComments(r.Check.Pos(), n.Y.Pos()) {
		p.Declined(ctx, config.RedundantNilCheck, n, "Comments after nil check")

		return
	}

	doc, ok := p.Document(ctx, n)
	if !ok {
		return
	}

	fixed, err := r.Fix(doc)
	if err != nil {
		p.Declined(ctx, config.RedundantNilCheck, n, "Can't remove nil check", "error", err)

		return
	}

	p.Report(config.RedundantNilCheck, r.Check, "nil check of "+types.ExprString(r.Value)+" is implied by the len comparison", fixed)
}

// nilable reports whether len of a nil value of t is 0.
func nilable(t types.Type) bool {
	if t == nil {
		return false
	}

	switch t.Underlying().(type) {
	case *types.Slice, *types.Map, *types.Chan:
		return true
	}

	return false
}

// lenPredicate matches a comparison of len(x) with an integer constant and
// evaluates it for len(x) == 0.
func lenPredicate(info *types.Info, e, x ast.Expr) (holds, ok bool) {
	b, ok := syntax.BinaryExpression(e, syntax.DefaultOptions)
	if !ok {
		return false, false
	}

	switch b.Op {
	case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
	default:
		return false, false
	}

	zero := constant.MakeInt64(0)

	switch {
	case isLen(info, b.Left, x):
		c, ok := intConstant(info, b.Right)

		return ok && constant.Compare(zero, b.Op, c), ok

	case isLen(info, b.Right, x):
		c, ok := intConstant(info, b.Left)

		return ok && constant.Compare(c, b.Op, zero), ok
	}

	return false, false
}

func intConstant(info *types.Info, e ast.Expr) (constant.Value, bool) {
	v := info.Types[e].Value
	if v == nil {
		return nil, false
	}

	v = constant.ToInt(v)

	return v, v.Kind() == constant.Int
}

// isLen matches a call of the builtin len with the argument x.
func isLen(info *types.Info, e, x ast.Expr) bool {
	call, ok := astutil.WalkDownParentheses(e).(*ast.CallExpr)
	if !ok || len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return false
	}

	id, ok := astutil.WalkDownParentheses(call.Fun).(*ast.Ident)
	if !ok {
		return false
	}

	if b, ok := info.Uses[id].(*types.Builtin); !ok || b.Name() != "len" {
		return false
	}

	return astutil.Equivalent(info, call.Args[0], x)
}
