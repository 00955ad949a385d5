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
	"go/types"

	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/report"
	"fillmore-labs.com/reshape/internal/syntax"
)

// AnalyzeFuncValue matches func(v T) R { return f(v) } and func(v T) { f(v) }
// for a non-generic package level function f of the same type, returning f.
func AnalyzeFuncValue(info *types.Info, lit *ast.FuncLit) (ast.Expr, bool) {
	fl, ok := syntax.SingleParameterFuncLit(lit, syntax.DefaultOptions)
	if !ok || len(fl.Body.List) != 1 {
		return nil, false
	}

	var e ast.Expr

	switch stmt := fl.Body.List[0].(type) {
	case *ast.ReturnStmt:
		if len(stmt.Results) != 1 {
			return nil, false
		}

		e = stmt.Results[0]

	case *ast.ExprStmt:
		if fl.Results != nil && len(fl.Results.List) > 0 {
			return nil, false
		}

		e = stmt.X

	default:
		return nil, false
	}

	call, ok := e.(*ast.CallExpr)
	if !ok || len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return nil, false
	}

	param := info.Defs[fl.Parameter]
	if arg, ok := call.Args[0].(*ast.Ident); !ok || param == nil || info.Uses[arg] != param {
		return nil, false
	}

	var name *ast.Ident

	switch fun := call.Fun.(type) {
	case *ast.Ident:
		name = fun

	case *ast.SelectorExpr:
		if _, ok := fun.X.(*ast.Ident); !ok {
			return nil, false
		}

		if _, ok := info.Uses[fun.X.(*ast.Ident)].(*types.PkgName); !ok {
			return nil, false
		}

		name = fun.Sel

	default:
		return nil, false
	}

	f, ok := info.Uses[name].(*types.Func)
	if !ok || f.Pkg() == nil || f.Parent() != f.Pkg().Scope() {
		return nil, false
	}

	sig := f.Signature()
	if sig.Recv() != nil || sig.TypeParams().Len() > 0 {
		return nil, false
	}

	if !types.Identical(info.TypeOf(lit), sig) {
		return nil, false
	}

	return call.Fun, true
}

// CheckFuncValue reports function literals that can be replaced by the function they call.
func CheckFuncValue(ctx context.Context, p *report.Pass, lit *ast.FuncLit) {
	fun, ok := AnalyzeFuncValue(p.TypesInfo, lit)
	if !ok {
		return
	}

	if p.File.HasComments(lit.Pos(), lit.End()) {
		p.Declined(ctx, config.FuncValue, lit, "Comments in function literal")

		return
	}

	doc, ok := p.Document(ctx, lit)
	if !ok {
		return
	}

	fixed, err := doc.ReplaceNode(lit, doc.NodeText(fun))
	if err != nil {
		p.Declined(ctx, config.FuncValue, lit, "Can't replace function literal", "error", err)

		return
	}

	p.Report(config.FuncValue, lit.Type, "function literal can be replaced by "+types.ExprString(fun), fixed)
}
