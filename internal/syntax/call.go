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

package syntax

import (
	"go/ast"
	"go/token"
)

// MemberInvocationInfo destructures a method call x.Name(args).
type MemberInvocationInfo struct {
	Node       *ast.CallExpr
	Expression ast.Expr
	Name       *ast.Ident
	Args       []ast.Expr
	Ellipsis   token.Pos
}

// MemberInvocation matches a call through a plain selector.
//
// Generic instantiations (x.M[T]()) and parenthesized callees ((x.M)()) don't match.
func MemberInvocation(e ast.Expr, opts Options) (MemberInvocationInfo, bool) {
	call, ok := opts.walk(e).(*ast.CallExpr)
	if !ok || call == nil || !call.Lparen.IsValid() || !call.Rparen.IsValid() {
		return MemberInvocationInfo{}, false
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel == nil || !opts.check(sel.Sel) || sel.Sel.Name == "_" {
		return MemberInvocationInfo{}, false
	}

	expr := opts.walk(sel.X)
	if !opts.check(expr) {
		return MemberInvocationInfo{}, false
	}

	for _, arg := range call.Args {
		if !opts.check(arg) {
			return MemberInvocationInfo{}, false
		}
	}

	return MemberInvocationInfo{
		Node:       call,
		Expression: expr,
		Name:       sel.Sel,
		Args:       call.Args,
		Ellipsis:   call.Ellipsis,
	}, true
}

// Receiver returns the invocation this invocation is called on, as in x.A().B().
func (i MemberInvocationInfo) Receiver(opts Options) (MemberInvocationInfo, bool) {
	return MemberInvocation(i.Expression, opts)
}

// ChainRoot walks down a call chain like x.A().B().C() and returns the innermost
// receiver expression x together with the number of calls.
func (i MemberInvocationInfo) ChainRoot(opts Options) (ast.Expr, int) {
	if i.Node == nil {
		return nil, 0
	}

	n := 1
	for {
		r, ok := i.Receiver(opts)
		if !ok {
			return i.Expression, n
		}

		i = r
		n++
	}
}
