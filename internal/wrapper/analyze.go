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

// Package wrapper finds methods that only forward to the method of the same
// name promoted from an embedded field.
package wrapper

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/reshape/internal/syntax"
)

// Analysis describes a forwarding method.
type Analysis struct {
	Decl  *ast.FuncDecl
	Call  syntax.MemberInvocationInfo
	Field *types.Var // the embedded field
}

// Analyze decides whether fn only forwards to a method promoted from an embedded
// field, so that removing it keeps the method set of the receiver type.
func Analyze(info *types.Info, fn *ast.FuncDecl) (Analysis, bool) {
	if fn.Recv == nil || fn.Body == nil || len(fn.Body.List) != 1 {
		return Analysis{}, false
	}

	recv, ok := receiver(info, fn)
	if !ok {
		return Analysis{}, false
	}

	method, ok := info.Defs[fn.Name].(*types.Func)
	if !ok {
		return Analysis{}, false
	}

	sig := method.Signature()

	e, ok := forwardedCall(fn.Body.List[0], sig.Results().Len())
	if !ok {
		return Analysis{}, false
	}

	call, ok := syntax.MemberInvocation(e, syntax.Options(0))
	if !ok || call.Name.Name != fn.Name.Name {
		return Analysis{}, false
	}

	// r.E
	fieldSel, ok := call.Expression.(*ast.SelectorExpr)
	if !ok {
		return Analysis{}, false
	}

	if id, ok := fieldSel.X.(*ast.Ident); !ok || info.Uses[id] != recv {
		return Analysis{}, false
	}

	fs, ok := info.Selections[fieldSel]
	if !ok || fs.Kind() != types.FieldVal || len(fs.Index()) != 1 {
		return Analysis{}, false
	}

	field, ok := fs.Obj().(*types.Var)
	if !ok || !field.Embedded() {
		return Analysis{}, false
	}

	ms, ok := info.Selections[call.Node.Fun.(*ast.SelectorExpr)]
	if !ok || ms.Kind() != types.MethodVal || !types.Identical(ms.Type(), sig) {
		return Analysis{}, false
	}

	if !forwardsParameters(info, fn.Type.Params, call, sig.Variadic()) {
		return Analysis{}, false
	}

	if !keepsMethodSet(recv.Type(), field, method, len(ms.Index())) {
		return Analysis{}, false
	}

	return Analysis{Decl: fn, Call: call, Field: field}, true
}

// receiver returns the named, non-generic receiver variable.
func receiver(info *types.Info, fn *ast.FuncDecl) (*types.Var, bool) {
	if len(fn.Recv.List) != 1 || len(fn.Recv.List[0].Names) != 1 {
		return nil, false
	}

	name := fn.Recv.List[0].Names[0]
	if name.Name == "_" {
		return nil, false
	}

	recv, ok := info.Defs[name].(*types.Var)
	if !ok {
		return nil, false
	}

	t := recv.Type()
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok || named.TypeParams().Len() > 0 {
		return nil, false
	}

	if _, ok := named.Underlying().(*types.Struct); !ok {
		return nil, false
	}

	return recv, true
}

// forwardedCall returns the call of a body consisting of return r.E.M(…),
// or r.E.M(…) for methods without results.
func forwardedCall(stmt ast.Stmt, results int) (ast.Expr, bool) {
	switch stmt := stmt.(type) {
	case *ast.ReturnStmt:
		if results == 0 || len(stmt.Results) != 1 {
			return nil, false
		}

		return stmt.Results[0], true

	case *ast.ExprStmt:
		if results != 0 {
			return nil, false
		}

		return stmt.X, true
	}

	return nil, false
}

// forwardsParameters reports whether the arguments are exactly the parameters, in order.
func forwardsParameters(info *types.Info, params *ast.FieldList, call syntax.MemberInvocationInfo, variadic bool) bool {
	if call.Ellipsis.IsValid() != variadic {
		return false
	}

	i := 0
	for _, field := range params.List {
		if len(field.Names) == 0 {
			return false
		}

		for _, name := range field.Names {
			if i >= len(call.Args) {
				return false
			}

			param := info.Defs[name]
			if param == nil || name.Name == "_" {
				return false
			}

			arg, ok := call.Args[i].(*ast.Ident)
			if !ok || info.Uses[arg] != param {
				return false
			}

			i++
		}
	}

	return i == len(call.Args)
}

// keepsMethodSet reports whether the method promoted from field, found at depth
// below it, replaces the declared method in the method sets of the
// receiver type, without adding it to the value method set.
func keepsMethodSet(recv types.Type, field *types.Var, method *types.Func, depth int) bool {
	_, pointerRecv := recv.(*types.Pointer)
	if pointerRecv {
		recv = recv.(*types.Pointer).Elem()
	}

	st, ok := recv.Underlying().(*types.Struct)
	if !ok {
		return false
	}

	// Another embedded field providing the name at the same depth makes the
	// selector ambiguous; a shallower one would win.
	for f := range st.Fields() {
		if f == field || !f.Embedded() {
			continue
		}

		if _, index, _ := types.LookupFieldOrMethod(f.Type(), true, method.Pkg(), method.Name()); len(index) > 0 && len(index) <= depth {
			return false
		}
	}

	// A pointer receiver keeps the method out of the value method set, so the
	// promoted method must not be in it either. A value receiver needs it there.
	promoted := types.NewMethodSet(field.Type()).Lookup(method.Pkg(), method.Name()) != nil

	return promoted != pointerRecv
}
