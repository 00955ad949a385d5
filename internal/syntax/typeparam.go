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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// TypeParameterConstraintInfo destructures the constraint of a type parameter.
type TypeParameterConstraintInfo struct {
	Constraint ast.Expr
	Field      *ast.Field
	Name       *ast.Ident
	// Declaration is the generic *ast.FuncDecl or *ast.TypeSpec.
	Declaration ast.Node
	TypeParams  *ast.FieldList
}

// TypeParameterConstraint matches a type parameter field at c, as in [T any] or [K, V comparable].
// Name is the first parameter the constraint applies to; every name in the field
// must occur exactly once in the type parameter list.
func TypeParameterConstraint(c inspector.Cursor, opts Options) (TypeParameterConstraintInfo, bool) {
	if c.Inspector() == nil {
		return TypeParameterConstraintInfo{}, false
	}

	field, ok := c.Node().(*ast.Field)
	if !ok || field == nil || len(field.Names) == 0 || !opts.check(field.Type) {
		return TypeParameterConstraintInfo{}, false
	}

	if ek, _ := c.ParentEdge(); ek != edge.FieldList_List {
		return TypeParameterConstraintInfo{}, false
	}

	list := c.Parent()
	params := list.Node().(*ast.FieldList)

	var decl ast.Node

	switch ek, _ := list.ParentEdge(); ek {
	case edge.TypeSpec_TypeParams:
		decl = list.Parent().Node()

	case edge.FuncType_TypeParams:
		fun := list.Parent()
		if ek, _ := fun.ParentEdge(); ek != edge.FuncDecl_Type {
			return TypeParameterConstraintInfo{}, false
		}

		decl = fun.Parent().Node()

	default:
		return TypeParameterConstraintInfo{}, false
	}

	for _, name := range field.Names {
		if !opts.check(name) || countTypeParam(params, name.Name) != 1 {
			return TypeParameterConstraintInfo{}, false
		}
	}

	return TypeParameterConstraintInfo{
		Constraint:  field.Type,
		Field:       field,
		Name:        field.Names[0],
		Declaration: decl,
		TypeParams:  params,
	}, true
}

func countTypeParam(params *ast.FieldList, name string) int {
	n := 0

	for _, f := range params.List {
		for _, id := range f.Names {
			if id.Name == name {
				n++
			}
		}
	}

	return n
}
