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

// Package ifswitch converts if / else if chains comparing one value against
// constants into an expression switch.
package ifswitch

import (
	"context"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/reshape/internal/astutil"
	"fillmore-labs.com/reshape/internal/syntax"
)

// Case is one clause of the resulting switch. Labels is empty for the default clause.
type Case struct {
	Labels []ast.Expr
	Body   *ast.BlockStmt
}

// Analysis is the verdict for one if / else if chain.
type Analysis struct {
	Chain        syntax.IfChainInfo
	Discriminant ast.Expr
	Cases        []Case
}

// Analyze decides whether the chain starting at the if statement at c can be
// written as a switch on a single value.
func Analyze(ctx context.Context, info *types.Info, c inspector.Cursor) (Analysis, bool) {
	chain, ok := syntax.IfChain(c, syntax.DefaultOptions)
	if !ok || chain.Conditional() < 2 {
		return Analysis{}, false
	}

	a := Analysis{Chain: chain, Cases: make([]Case, 0, len(chain.Branches))}

	var seen []constant.Value

	for _, branch := range chain.Branches {
		if ctx.Err() != nil {
			return Analysis{}, false
		}

		if capturesBreak(branch.Body) {
			return Analysis{}, false
		}

		if branch.Condition == nil {
			a.Cases = append(a.Cases, Case{Body: branch.Body})

			continue
		}

		labels, ok := a.labels(info, branch.Condition)
		if !ok {
			return Analysis{}, false
		}

		for _, label := range labels {
			v := info.Types[label].Value
			for _, s := range seen {
				if constant.Compare(s, token.EQL, v) {
					return Analysis{}, false // duplicate case
				}
			}

			seen = append(seen, v)
		}

		a.Cases = append(a.Cases, Case{Labels: labels, Body: branch.Body})
	}

	if !switchable(info.TypeOf(a.Discriminant)) {
		return Analysis{}, false
	}

	return a, true
}

// labels destructures x == A || x == B || ... and returns the constants.
func (a *Analysis) labels(info *types.Info, cond ast.Expr) ([]ast.Expr, bool) {
	operands := []ast.Expr{cond}
	if b, ok := syntax.BinaryExpression(cond, syntax.DefaultOptions); ok && b.Op == token.LOR {
		operands = b.Operands(syntax.DefaultOptions)
	}

	labels := make([]ast.Expr, 0, len(operands))

	for _, operand := range operands {
		b, ok := syntax.BinaryExpression(operand, syntax.DefaultOptions)
		if !ok || b.Op != token.EQL {
			return nil, false
		}

		value, label := b.Left, b.Right
		if !isConstant(info, label) {
			value, label = label, value
			if !isConstant(info, label) {
				return nil, false
			}
		}

		if isConstant(info, value) || !discriminant(info, value) {
			return nil, false
		}

		switch {
		case a.Discriminant == nil:
			a.Discriminant = value

		case !astutil.Equivalent(info, a.Discriminant, value):
			return nil, false
		}

		labels = append(labels, label)
	}

	return labels, true
}

func isConstant(info *types.Info, e ast.Expr) bool {
	return info.Types[e].Value != nil
}

// discriminant accepts identifiers and field selections without side effects.
func discriminant(info *types.Info, e ast.Expr) bool {
	switch e.(type) {
	case *ast.Ident, *ast.SelectorExpr:
		return astutil.SideEffectFree(info, e)
	}

	return false
}

// switchable reports whether t is a boolean, numeric or string type, possibly named.
func switchable(t types.Type) bool {
	if t == nil {
		return false
	}

	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return false
	}

	return b.Info()&(types.IsBoolean|types.IsInteger|types.IsFloat|types.IsString) != 0
}

// capturesBreak reports whether body contains a break that would leave the new
// switch instead of an enclosing loop, switch or select.
func capturesBreak(body *ast.BlockStmt) bool {
	found := false
	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.ForStmt, *ast.RangeStmt, *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt, *ast.FuncLit:
			return false

		case *ast.BranchStmt:
			if n.Tok == token.BREAK && n.Label == nil {
				found = true
			}
		}

		return !found
	})

	return found
}
