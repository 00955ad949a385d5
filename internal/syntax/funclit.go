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

import "go/ast"

// SingleParameterFuncLitInfo destructures a function literal with one named parameter.
type SingleParameterFuncLitInfo struct {
	Node      *ast.FuncLit
	Parameter *ast.Ident
	Type      ast.Expr
	Results   *ast.FieldList // may be nil
	Body      *ast.BlockStmt
}

// SingleParameterFuncLit matches func(p T) ... { ... }.
func SingleParameterFuncLit(e ast.Expr, opts Options) (SingleParameterFuncLitInfo, bool) {
	lit, ok := opts.walk(e).(*ast.FuncLit)
	if !ok || lit == nil || lit.Type == nil || !opts.check(lit.Body) {
		return SingleParameterFuncLitInfo{}, false
	}

	params := lit.Type.Params
	if params == nil || len(params.List) != 1 {
		return SingleParameterFuncLitInfo{}, false
	}

	field := params.List[0]
	if len(field.Names) != 1 || !opts.check(field.Names[0]) || !opts.check(field.Type) {
		return SingleParameterFuncLitInfo{}, false
	}

	return SingleParameterFuncLitInfo{
		Node:      lit,
		Parameter: field.Names[0],
		Type:      field.Type,
		Results:   lit.Type.Results,
		Body:      lit.Body,
	}, true
}
