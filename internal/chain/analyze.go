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

// Package chain merges consecutive calls on the same variable into a single
// fluent call chain.
package chain

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/reshape/internal/astutil"
	"fillmore-labs.com/reshape/internal/syntax"
)

// Form distinguishes x = x.M() assignments from x.M() call statements.
type Form uint8

const (
	// Assign is the statement x = x.M(…).
	Assign Form = iota + 1

	// Call is the statement x.M(…) on a pointer x.
	Call
)

// Link is one statement of a run.
type Link struct {
	Stmt ast.Stmt
	Call syntax.MemberInvocationInfo
	Root *ast.Ident
}

// Run is a sequence of statements that can be chained.
type Run struct {
	Form  Form
	Var   types.Object
	Links []Link
}

// Runs returns the maximal runs of at least two chainable statements in list.
// Call statements only chain when methods confirms that every call returns its receiver.
func Runs(ctx context.Context, info *types.Info, methods *Methods, list []ast.Stmt) []Run {
	var (
		runs    []Run
		current Run
	)

	flush := func() {
		if len(current.Links) >= 2 {
			runs = append(runs, current)
		}

		current = Run{}
	}

	for _, stmt := range list {
		if ctx.Err() != nil {
			return nil
		}

		form, obj, link, ok := chainable(info, methods, stmt)
		if !ok {
			flush()

			continue
		}

		if current.Var != obj || current.Form != form {
			flush()
			current = Run{Form: form, Var: obj}
		}

		current.Links = append(current.Links, link)
	}

	flush()

	return runs
}

// chainable matches x = x.M(…) and x.M(…), where every call in the chain returns the type of x.
// In x.M(…), every call must return x itself.
func chainable(info *types.Info, methods *Methods, stmt ast.Stmt) (Form, types.Object, Link, bool) {
	var (
		form Form
		e    ast.Expr
		lhs  *ast.Ident
	)

	switch stmt := stmt.(type) {
	case *ast.AssignStmt:
		if stmt.Tok != token.ASSIGN || len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
			return 0, nil, Link{}, false
		}

		id, ok := stmt.Lhs[0].(*ast.Ident)
		if !ok {
			return 0, nil, Link{}, false
		}

		form, e, lhs = Assign, stmt.Rhs[0], id

	case *ast.ExprStmt:
		form, e = Call, stmt.X

	default:
		return 0, nil, Link{}, false
	}

	call, ok := syntax.MemberInvocation(e, syntax.Options(0))
	if !ok {
		return 0, nil, Link{}, false
	}

	rootExpr, _ := call.ChainRoot(syntax.Options(0))

	root, ok := rootExpr.(*ast.Ident)
	if !ok {
		return 0, nil, Link{}, false
	}

	obj, ok := info.Uses[root].(*types.Var)
	if !ok {
		return 0, nil, Link{}, false
	}

	if lhs != nil && info.Uses[lhs] != obj {
		return 0, nil, Link{}, false
	}

	if form == Call {
		if _, ok := obj.Type().Underlying().(*types.Pointer); !ok {
			return 0, nil, Link{}, false
		}
	}

	for c, ok := call, true; ok; c, ok = c.Receiver(syntax.Options(0)) {
		m, ok := returnsType(info, c, obj.Type(), form == Call)
		if !ok || form == Call && !methods.ReturnsReceiver(m) {
			return 0, nil, Link{}, false
		}

		for _, arg := range c.Args {
			if astutil.Mentions(info, arg, obj) {
				return 0, nil, Link{}, false
			}
		}
	}

	return form, obj, Link{Stmt: stmt, Call: call, Root: root}, true
}

// returnsType reports whether the call is a method call returning exactly t.
// With onReceiver, the method must also be declared with receiver type t.
func returnsType(info *types.Info, c syntax.MemberInvocationInfo, t types.Type, onReceiver bool) (*types.Func, bool) {
	sel, ok := info.Selections[c.Node.Fun.(*ast.SelectorExpr)]
	if !ok || sel.Kind() != types.MethodVal {
		return nil, false
	}

	m, ok := sel.Obj().(*types.Func)
	if !ok || onReceiver && !types.Identical(m.Signature().Recv().Type(), t) {
		return nil, false
	}

	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Results().Len() != 1 {
		return nil, false
	}

	return m, types.Identical(sig.Results().At(0).Type(), t)
}
