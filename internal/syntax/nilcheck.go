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
	"go/types"
	"strings"

	"fillmore-labs.com/reshape/internal/astutil"
)

// NilCheckKind classifies a nil check.
type NilCheckKind uint8

const (
	// EqualsToNil is x == nil.
	EqualsToNil NilCheckKind = 1 << iota

	// NotEqualsToNil is x != nil.
	NotEqualsToNil

	// Valid is x.Valid on a database/sql nullable value.
	Valid

	// NotValid is !x.Valid on a database/sql nullable value.
	NotValid

	// ComparisonToNil matches both comparisons with nil.
	ComparisonToNil = EqualsToNil | NotEqualsToNil

	// ValidProperty matches both forms of a Valid check.
	ValidProperty = Valid | NotValid

	// IsNil matches checks that are true for an absent value.
	IsNil = EqualsToNil | NotValid

	// IsNotNil matches checks that are true for a present value.
	IsNotNil = NotEqualsToNil | Valid

	// AllNilChecks matches every kind.
	AllNilChecks = ComparisonToNil | ValidProperty
)

// String implements [fmt.Stringer].
func (k NilCheckKind) String() string {
	names := [...]string{"EqualsToNil", "NotEqualsToNil", "Valid", "NotValid"}

	var b strings.Builder
	for i, name := range names {
		if k&(1<<i) == 0 {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte('|')
		}

		b.WriteString(name)
	}

	if b.Len() == 0 {
		return "None"
	}

	return b.String()
}

// NilCheckInfo destructures an expression testing a value for absence.
type NilCheckInfo struct {
	// Node is the whole check.
	Node ast.Expr

	// Expression is the checked value, x in x != nil or x.Valid.
	Expression ast.Expr

	// Kind is exactly one of the single kinds.
	Kind NilCheckKind
}

// NilCheck matches a nil check of one of the allowed kinds.
//
// Recognizing Valid checks needs the semantic model to confirm the field belongs to
// a database/sql nullable type; with a nil info only comparisons with nil match.
func NilCheck(e ast.Expr, info *types.Info, allowed NilCheckKind, opts Options) (NilCheckInfo, bool) {
	e = opts.walk(e)
	if !opts.check(e) {
		return NilCheckInfo{}, false
	}

	switch n := e.(type) {
	case *ast.BinaryExpr:
		return nilCheckBinary(n, info, allowed, opts)

	case *ast.UnaryExpr:
		if n.Op != token.NOT || allowed&NotValid == 0 {
			return NilCheckInfo{}, false
		}

		if x, ok := validField(opts.walk(n.X), info); ok {
			return NilCheckInfo{Node: n, Expression: x, Kind: NotValid}, true
		}

	case *ast.SelectorExpr:
		if allowed&Valid == 0 {
			return NilCheckInfo{}, false
		}

		if x, ok := validField(n, info); ok {
			return NilCheckInfo{Node: n, Expression: x, Kind: Valid}, true
		}
	}

	return NilCheckInfo{}, false
}

func nilCheckBinary(n *ast.BinaryExpr, info *types.Info, allowed NilCheckKind, opts Options) (NilCheckInfo, bool) {
	b, ok := BinaryExpression(n, opts)
	if !ok || (b.Op != token.EQL && b.Op != token.NEQ) {
		return NilCheckInfo{}, false
	}

	left, right := b.Left, b.Right
	switch {
	case isNil(right, info) && !isNil(left, info):
		kind := EqualsToNil
		if b.Op == token.NEQ {
			kind = NotEqualsToNil
		}

		if allowed&kind == 0 {
			return NilCheckInfo{}, false
		}

		return NilCheckInfo{Node: n, Expression: left, Kind: kind}, true

	case isNil(left, info) && !isNil(right, info):
		kind := EqualsToNil
		if b.Op == token.NEQ {
			kind = NotEqualsToNil
		}

		if allowed&kind == 0 {
			return NilCheckInfo{}, false
		}

		return NilCheckInfo{Node: n, Expression: right, Kind: kind}, true
	}

	// x.Valid == true, false != x.Valid, ...
	lit, field := right, left
	value, ok := boolConstant(lit, info)
	if !ok {
		lit, field = left, right
		if value, ok = boolConstant(lit, info); !ok {
			return NilCheckInfo{}, false
		}
	}

	x, ok := validField(field, info)
	if !ok {
		return NilCheckInfo{}, false
	}

	kind := NotValid
	if value == (b.Op == token.EQL) {
		kind = Valid
	}

	if allowed&kind == 0 {
		return NilCheckInfo{}, false
	}

	return NilCheckInfo{Node: n, Expression: x, Kind: kind}, true
}

func isNil(e ast.Expr, info *types.Info) bool {
	id, ok := e.(*ast.Ident)
	if !ok || id.Name != "nil" {
		return false
	}

	if info == nil {
		return true
	}

	return astutil.IsUniverse(info, id)
}

func boolConstant(e ast.Expr, info *types.Info) (value, ok bool) {
	id, ok := e.(*ast.Ident)
	if !ok {
		return false, false
	}

	value, ok = astutil.IsBoolLiteral(id)
	if !ok || info == nil || !astutil.IsUniverse(info, id) {
		return false, false
	}

	return value, true
}

// validField matches x.Valid where Valid is the field of a database/sql nullable type and returns x.
func validField(e ast.Expr, info *types.Info) (ast.Expr, bool) {
	sel, ok := e.(*ast.SelectorExpr)
	if !ok || info == nil || sel.Sel.Name != "Valid" {
		return nil, false
	}

	v, ok := info.ObjectOf(sel.Sel).(*types.Var)
	if !ok || !v.IsField() || v.Pkg() == nil || v.Pkg().Path() != "database/sql" {
		return nil, false
	}

	if t := info.TypeOf(sel); t == nil || !types.Identical(t, types.Typ[types.Bool]) {
		return nil, false
	}

	return sel.X, true
}
