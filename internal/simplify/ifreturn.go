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

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/reshape/internal/astutil"
	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/report"
	"fillmore-labs.com/reshape/internal/rewrite"
	"fillmore-labs.com/reshape/internal/syntax"
)

// IfBool is an if statement that returns or assigns a boolean literal in both branches.
type IfBool struct {
	If        *ast.IfStmt
	End       token.Pos // end of the replaced statements
	Condition ast.Expr
	Negate    bool
	Target    ast.Expr // assigned variable, nil for return
}

// AnalyzeIfBool matches the if statement at c in one of the forms
//
//	if c { return true }; return false
//	if c { return true } else { return false }
//	if c { x = true } else { x = false }
//
// with the literals possibly swapped.
func AnalyzeIfBool(info *types.Info, c inspector.Cursor) (IfBool, bool) {
	if ca, ok := syntax.ConditionalAssignment(c, syntax.DefaultOptions); ok {
		return ifAssign(info, ca)
	}

	var (
		n         *ast.IfStmt
		cond      ast.Expr
		whenTrue  ast.Stmt
		whenFalse ast.Stmt
	)

	if ie, ok := syntax.SimpleIfElse(c, syntax.DefaultOptions); ok {
		if len(ie.WhenTrue.List) != 1 || len(ie.WhenFalse.List) != 1 {
			return IfBool{}, false
		}

		n, cond, whenTrue, whenFalse = ie.Node, ie.Condition, ie.WhenTrue.List[0], ie.WhenFalse.List[0]
	} else if si, ok := syntax.SimpleIf(c, syntax.DefaultOptions); ok {
		list, i, ok := astutil.StatementList(c)
		if !ok || i+1 >= len(list) || len(si.Body.List) != 1 {
			return IfBool{}, false
		}

		n, cond, whenTrue, whenFalse = si.Node, si.Condition, si.Body.List[0], list[i+1]
	} else {
		return IfBool{}, false
	}

	vt, ok := returnsBool(info, whenTrue)
	if !ok {
		return IfBool{}, false
	}

	vf, ok := returnsBool(info, whenFalse)
	if !ok || vt == vf {
		return IfBool{}, false
	}

	ftype, _, ok := astutil.EnclosingFunc(c)
	if !ok || ftype.Results == nil || ftype.Results.NumFields() != 1 {
		return IfBool{}, false
	}

	result := info.TypeOf(ftype.Results.List[0].Type)
	if t := info.TypeOf(cond); t == nil || result == nil || !types.AssignableTo(t, result) {
		return IfBool{}, false
	}

	return IfBool{If: n, End: whenFalse.End(), Condition: cond, Negate: !vt}, true
}

func ifAssign(info *types.Info, ca syntax.ConditionalAssignmentInfo) (IfBool, bool) {
	if ca.Tok != token.ASSIGN {
		return IfBool{}, false
	}

	vt, ok := universeBool(info, ca.WhenTrue)
	if !ok {
		return IfBool{}, false
	}

	vf, ok := universeBool(info, ca.WhenFalse)
	if !ok || vt == vf {
		return IfBool{}, false
	}

	t, target := info.TypeOf(ca.Condition), info.TypeOf(ca.Left)
	if t == nil || target == nil || !types.AssignableTo(t, target) {
		return IfBool{}, false
	}

	return IfBool{If: ca.If, End: ca.If.End(), Condition: ca.Condition, Negate: !vt, Target: ca.Left}, true
}

func returnsBool(info *types.Info, stmt ast.Stmt) (value, ok bool) {
	ret, ok := stmt.(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return false, false
	}

	return universeBool(info, ret.Results[0])
}

// Fix replaces the statements with a return or assignment of the condition.
func (b IfBool) Fix(doc rewrite.Document, info *types.Info) (rewrite.Document, error) {
	value := doc.NodeText(b.Condition)
	if b.Negate {
		value = doc.Invert(info, b.Condition)
	}

	text := "return " + value
	if b.Target != nil {
		text = doc.NodeText(b.Target) + " = " + value
	}

	return doc.Replace(b.If.Pos(), b.End, text)
}

// CheckIfBool reports if statements that return or assign boolean literals.
func CheckIfBool(ctx context.Context, p *report.Pass, c inspector.Cursor) {
	b, ok := AnalyzeIfBool(p.TypesInfo, c)
	if !ok {
		return
	}

	if p.File.HasComments(b.If.Pos(), b.End) {
		p.Declined(ctx, config.IfReturnBool, b.If, "Comments in if statement")

		return
	}

	doc, ok := p.Document(ctx, b.If)
	if !ok {
		return
	}

	fixed, err := b.Fix(doc, p.TypesInfo)
	if err != nil {
		p.Declined(ctx, config.IfReturnBool, b.If, "Can't replace if statement", "error", err)

		return
	}

	message := "if statement can be replaced by returning the condition"
	if b.Target != nil {
		message = "if statement can be replaced by assigning the condition to " + types.ExprString(b.Target)
	}

	p.Report(config.IfReturnBool, ifHeader{b.If}, message, fixed)
}

// ifHeader ranges over the if keyword and the condition.
type ifHeader struct{ *ast.IfStmt }

func (h ifHeader) End() token.Pos { return h.Body.Lbrace }
