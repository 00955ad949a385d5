// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
)

// Equivalent reports whether two expressions denote the same value, comparing
// identifiers by the object they resolve to rather than by name.
//
// Only expressions without calls are considered; everything else compares unequal.
func Equivalent(info *types.Info, x, y ast.Expr) bool {
	x, y = WalkDownParentheses(x), WalkDownParentheses(y)

	switch x := x.(type) {
	case *ast.Ident:
		y, ok := y.(*ast.Ident)
		if !ok || x.Name != y.Name {
			return false
		}

		ox, oy := info.ObjectOf(x), info.ObjectOf(y)

		return ox != nil && ox == oy

	case *ast.SelectorExpr:
		y, ok := y.(*ast.SelectorExpr)
		if !ok || x.Sel.Name != y.Sel.Name {
			return false
		}

		if ox, oy := info.ObjectOf(x.Sel), info.ObjectOf(y.Sel); ox == nil || ox != oy {
			return false
		}

		return Equivalent(info, x.X, y.X)

	case *ast.BasicLit:
		y, ok := y.(*ast.BasicLit)
		if !ok || x.Kind != y.Kind {
			return false
		}

		vx, vy := info.Types[x].Value, info.Types[y].Value
		if vx == nil || vy == nil {
			return x.Value == y.Value
		}

		return constant.Compare(vx, token.EQL, vy)

	case *ast.StarExpr:
		y, ok := y.(*ast.StarExpr)

		return ok && Equivalent(info, x.X, y.X)

	case *ast.UnaryExpr:
		y, ok := y.(*ast.UnaryExpr)

		return ok && x.Op == y.Op && x.Op != token.ARROW && Equivalent(info, x.X, y.X)

	case *ast.BinaryExpr:
		y, ok := y.(*ast.BinaryExpr)

		return ok && x.Op == y.Op && Equivalent(info, x.X, y.X) && Equivalent(info, x.Y, y.Y)

	case *ast.IndexExpr:
		y, ok := y.(*ast.IndexExpr)

		return ok && Equivalent(info, x.X, y.X) && Equivalent(info, x.Index, y.Index)
	}

	return false
}

func isPackageName(info *types.Info, e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	if !ok {
		return false
	}

	_, ok = info.Uses[id].(*types.PkgName)

	return ok
}

// SideEffectFree reports whether evaluating e repeatedly yields the same value
// without side effects: identifiers, package-qualified names and field selections.
func SideEffectFree(info *types.Info, e ast.Expr) bool {
	switch e := WalkDownParentheses(e).(type) {
	case *ast.Ident:
		switch info.ObjectOf(e).(type) {
		case *types.Var, *types.Const, *types.Nil:
			return true
		}

		return false

	case *ast.SelectorExpr:
		if isPackageName(info, e.X) {
			switch info.ObjectOf(e.Sel).(type) {
			case *types.Var, *types.Const:
				return true
			}

			return false
		}

		sel, ok := info.Selections[e]
		if !ok || sel.Kind() != types.FieldVal {
			return false
		}

		return SideEffectFree(info, e.X)

	case *ast.BasicLit:
		return true
	}

	return false
}

// Mentions reports whether any identifier in n refers to obj.
func Mentions(info *types.Info, n ast.Node, obj types.Object) bool {
	if n == nil || obj == nil {
		return false
	}

	found := false
	ast.Inspect(n, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && info.ObjectOf(id) == obj {
			found = true
		}

		return !found
	})

	return found
}

// IsUniverse reports whether id refers to the predeclared object of the same name.
func IsUniverse(info *types.Info, id *ast.Ident) bool {
	obj := info.ObjectOf(id)

	return obj != nil && obj == types.Universe.Lookup(id.Name)
}
