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

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/report"
	"fillmore-labs.com/reshape/internal/rewrite"
	"fillmore-labs.com/reshape/internal/syntax"
)

// Constraint is a type parameter constraint with a shorter spelling.
type Constraint struct {
	syntax.TypeParameterConstraintInfo

	// Embedded is the single embedded constraint, nil when the constraint is any.
	Embedded ast.Expr
}

// AnalyzeConstraint matches the type parameter field at c when its constraint
// is interface{} or an interface embedding exactly one named constraint.
func AnalyzeConstraint(info *types.Info, pkg *types.Package, c inspector.Cursor) (Constraint, bool) {
	tp, ok := syntax.TypeParameterConstraint(c, syntax.DefaultOptions)
	if !ok {
		return Constraint{}, false
	}

	it, ok := tp.Constraint.(*ast.InterfaceType)
	if !ok || it.Incomplete {
		return Constraint{}, false
	}

	if it.Methods == nil || len(it.Methods.List) == 0 {
		if !anyIsUniverse(pkg, tp.Constraint) {
			return Constraint{}, false
		}

		return Constraint{TypeParameterConstraintInfo: tp}, true
	}

	if len(it.Methods.List) != 1 {
		return Constraint{}, false
	}

	elem := it.Methods.List[0]
	if len(elem.Names) != 0 {
		return Constraint{}, false
	}

	var name *ast.Ident

	switch e := elem.Type.(type) {
	case *ast.Ident:
		name = e

	case *ast.SelectorExpr:
		name = e.Sel

	default:
		return Constraint{}, false
	}

	tn, ok := info.Uses[name].(*types.TypeName)
	if !ok || !types.IsInterface(tn.Type()) {
		return Constraint{}, false
	}

	return Constraint{TypeParameterConstraintInfo: tp, Embedded: elem.Type}, true
}

// Fix replaces the constraint.
func (k Constraint) Fix(doc rewrite.Document) (rewrite.Document, error) {
	if k.Embedded == nil {
		return doc.ReplaceNode(k.Constraint, "any")
	}

	return doc.ReplaceNode(k.Constraint, doc.NodeText(k.Embedded))
}

// CheckConstraint reports type parameter constraints with a shorter spelling.
func CheckConstraint(ctx context.Context, p *report.Pass, c inspector.Cursor) {
	k, ok := AnalyzeConstraint(p.TypesInfo, p.Pkg, c)
	if !ok {
		return
	}

	if p.File.HasComments(k.Constraint.Pos(), k.Constraint.End()) {
		p.Declined(ctx, config.SimplifyConstraint, k.Constraint, "Comments in constraint")

		return
	}

	doc, ok := p.Document(ctx, k.Constraint)
	if !ok {
		return
	}

	fixed, err := k.Fix(doc)
	if err != nil {
		p.Declined(ctx, config.SimplifyConstraint, k.Constraint, "Can't simplify constraint", "error", err)

		return
	}

	replacement := "any"
	if k.Embedded != nil {
		replacement = types.ExprString(k.Embedded)
	}

	p.Report(config.SimplifyConstraint, k.Constraint, "constraint of "+k.Name.Name+" can be written as "+replacement, fixed)
}

// anyIsUniverse reports whether the name any at the position of n denotes the predeclared alias.
func anyIsUniverse(pkg *types.Package, n ast.Node) bool {
	if pkg == nil {
		return false
	}

	scope := pkg.Scope().Innermost(n.Pos())
	if scope == nil {
		return false
	}

	_, obj := scope.LookupParent("any", n.Pos())

	return obj != nil && obj == types.Universe.Lookup("any")
}
