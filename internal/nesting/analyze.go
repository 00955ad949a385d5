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

package nesting

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/reshape/internal/astutil"
	"fillmore-labs.com/reshape/internal/syntax"
	"fillmore-labs.com/reshape/internal/tracker"
)

// Checker decides whether if statements can be reduced.
type Checker struct {
	Info    *types.Info
	Tracker tracker.Tracker
	Options Options
}

// Analyze decides whether the if statement at c can be inverted so that its body
// follows it instead of being nested in it.
//
// The if must not have an else branch or an init statement. It must end its
// statement list, where the jump is implied by the context, or be followed by a
// single jump statement.
func (k Checker) Analyze(ctx context.Context, c inspector.Cursor) Analysis {
	a, ok := k.analyze(ctx, c)
	if !ok {
		return Analysis{}
	}

	if !k.Options.Has(AllowNestedFix) {
		if outer, ok := enclosingIf(c); ok {
			if _, ok := k.analyze(ctx, outer); ok {
				return Analysis{}
			}
		}
	}

	a.Success = true

	return a
}

func (k Checker) analyze(ctx context.Context, c inspector.Cursor) (Analysis, bool) {
	if ctx.Err() != nil {
		return Analysis{}, false
	}

	i, ok := syntax.SimpleIf(c, syntax.DefaultOptions)
	if !ok || len(i.Body.List) == 0 {
		return Analysis{}, false
	}

	list, index, ok := astutil.StatementList(c)
	if !ok {
		return Analysis{}, false
	}

	var a Analysis

	switch index {
	case len(list) - 1:
		if len(list) == 1 && isFunctionBody(c.Parent()) {
			return Analysis{}, false // nothing to reduce
		}

		a, ok = k.implied(ctx, c)

	case len(list) - 2:
		a, ok = k.explicit(c.Node().(ast.Stmt), list[index+1])

	default:
		return Analysis{}, false
	}

	if !ok {
		return Analysis{}, false
	}

	// Mixed jump kinds are not supported.
	if last := k.jumpKind(i.Body.List[len(i.Body.List)-1]); last != NoJump && last != a.JumpKind {
		return Analysis{}, false
	}

	if !k.hoistable(c, i.Body, a) {
		return Analysis{}, false
	}

	if a.Jump != nil && a.TopNode != c.Node() && !k.sameReferences(c, a.Jump) {
		return Analysis{}, false
	}

	return a, true
}

// implied determines the jump equivalent to reaching the end of the statement list containing c.
func (k Checker) implied(ctx context.Context, c inspector.Cursor) (Analysis, bool) {
	if ctx.Err() != nil {
		return Analysis{}, false
	}

	container := c.Parent()

	switch container.Node().(type) {
	case *ast.CaseClause, *ast.CommClause:
		if !k.Options.Has(AllowSwitchSection) {
			return Analysis{}, false
		}

		// clause -> body -> switch, type switch or select
		return Analysis{TopNode: container.Parent().Parent().Node(), JumpKind: Break}, true

	case *ast.BlockStmt:

	default:
		return Analysis{}, false
	}

	switch ek, _ := container.ParentEdge(); ek {
	case edge.FuncDecl_Body, edge.FuncLit_Body:
		fun := container.Parent()

		var ftype *ast.FuncType
		switch n := fun.Node().(type) {
		case *ast.FuncDecl:
			ftype = n.Type

		case *ast.FuncLit:
			ftype = n.Type
		}

		if ftype == nil || ftype.Results != nil && len(ftype.Results.List) > 0 {
			return Analysis{}, false
		}

		return Analysis{TopNode: fun.Node(), JumpKind: Return}, true

	case edge.ForStmt_Body, edge.RangeStmt_Body:
		if !k.Options.Has(AllowLoop) {
			return Analysis{}, false
		}

		return Analysis{TopNode: container.Parent().Node(), JumpKind: Continue}, true

	case edge.BlockStmt_List:
		// A plain block is completed by completing its last statement.
		return k.following(ctx, container)

	case edge.IfStmt_Body, edge.IfStmt_Else:
		// Completing a branch completes the whole if / else if chain.
		outer := container.Parent()
		for {
			if ek, _ := outer.ParentEdge(); ek != edge.IfStmt_Else {
				break
			}

			outer = outer.Parent()
		}

		return k.following(ctx, outer)

	default:
		return Analysis{}, false
	}
}

// following determines the jump equivalent to completing the statement at c.
func (k Checker) following(ctx context.Context, c inspector.Cursor) (Analysis, bool) {
	list, index, ok := astutil.StatementList(c)
	if !ok {
		return Analysis{}, false
	}

	switch index {
	case len(list) - 1:
		return k.implied(ctx, c)

	case len(list) - 2:
		return k.explicit(c.Node().(ast.Stmt), list[index+1])

	default:
		return Analysis{}, false
	}
}

func (k Checker) explicit(stmt, next ast.Stmt) (Analysis, bool) {
	kind := k.jumpKind(next)
	if kind == NoJump {
		return Analysis{}, false
	}

	return Analysis{TopNode: stmt, JumpKind: kind, Jump: next}, true
}

func (k Checker) jumpKind(stmt ast.Stmt) JumpKind {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		return Return

	case *ast.BranchStmt:
		switch s.Tok {
		case token.BREAK:
			return Break

		case token.CONTINUE:
			return Continue

		case token.GOTO:
			return Goto
		}

	case *ast.ExprStmt:
		if _, ok := k.Tracker.Exit(s); ok {
			return Panic
		}
	}

	return NoJump
}

// hoistable reports whether the top-level declarations of body can move into the
// enclosing block without clashing with names visible there.
func (k Checker) hoistable(c inspector.Cursor, body *ast.BlockStmt, a Analysis) bool {
	var names []string
	for _, stmt := range body.List {
		for name := range astutil.AllStatementNames(stmt) {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return true
	}

	// Jumping over the hoisted declarations would not compile.
	if a.JumpKind == Goto {
		return false
	}

	scope := k.enclosingScope(c)
	if scope == nil {
		return false
	}

	// An explicit jump after the if stays in place and now follows the hoisted declarations.
	var jump ast.Stmt
	if a.TopNode == c.Node() {
		jump = a.Jump
	}

	for _, name := range names {
		// A := would reuse a variable of the same name instead of declaring a new one.
		if scope.Lookup(name) != nil {
			return false
		}

		if jump != nil && mentionsName(jump, name) {
			return false
		}
	}

	return true
}

// sameReferences reports whether every name in jump, copied to the position of the
// if statement at c, refers to the same object as at its original place.
func (k Checker) sameReferences(c inspector.Cursor, jump ast.Stmt) bool {
	scope := k.enclosingScope(c)
	if scope == nil {
		return false
	}

	pos := c.Node().Pos()
	same := true

	ast.Inspect(jump, func(n ast.Node) bool {
		if !same {
			return false
		}

		switch n := n.(type) {
		case *ast.SelectorExpr:
			// Fields and methods resolve through X.
			ast.Inspect(n.X, func(n ast.Node) bool {
				return same && k.resolvesTo(scope, pos, n, &same)
			})

			return false

		case *ast.BranchStmt:
			return false // labels are function-wide
		}

		return k.resolvesTo(scope, pos, n, &same)
	})

	return same
}

func (k Checker) resolvesTo(scope *types.Scope, pos token.Pos, n ast.Node, same *bool) bool {
	id, ok := n.(*ast.Ident)
	if !ok {
		return true
	}

	obj := k.Info.Uses[id]
	if obj == nil {
		return true
	}

	if _, found := scope.LookupParent(id.Name, pos); found != obj {
		*same = false
	}

	return false
}

func mentionsName(n ast.Node, name string) bool {
	found := false
	ast.Inspect(n, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && id.Name == name {
			found = true
		}

		return !found
	})

	return found
}

// enclosingScope returns the scope of the block containing the statement at c.
func (k Checker) enclosingScope(c inspector.Cursor) *types.Scope {
	if k.Info == nil {
		return nil
	}

	container := c.Parent()
	if scope := k.Info.Scopes[container.Node()]; scope != nil {
		return scope
	}

	// Function bodies share the scope of the signature.
	switch n := container.Parent().Node().(type) {
	case *ast.FuncDecl:
		return k.Info.Scopes[n.Type]

	case *ast.FuncLit:
		return k.Info.Scopes[n.Type]
	}

	return nil
}

func isFunctionBody(c inspector.Cursor) bool {
	ek, _ := c.ParentEdge()

	return ek == edge.FuncDecl_Body || ek == edge.FuncLit_Body
}

// enclosingIf returns the if statement whose body ends with the if statement at c.
func enclosingIf(c inspector.Cursor) (inspector.Cursor, bool) {
	list, index, ok := astutil.StatementList(c)
	if !ok || index != len(list)-1 {
		return inspector.Cursor{}, false
	}

	if ek, _ := c.Parent().ParentEdge(); ek != edge.IfStmt_Body {
		return inspector.Cursor{}, false
	}

	return c.Parent().Parent(), true
}
