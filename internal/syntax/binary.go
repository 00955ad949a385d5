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

// BinaryExpressionInfo destructures a binary expression.
type BinaryExpressionInfo struct {
	Node  *ast.BinaryExpr
	Left  ast.Expr
	Op    token.Token
	Right ast.Expr
}

// BinaryExpression matches a binary expression.
func BinaryExpression(e ast.Expr, opts Options) (BinaryExpressionInfo, bool) {
	b, ok := opts.walk(e).(*ast.BinaryExpr)
	if !ok || b == nil {
		return BinaryExpressionInfo{}, false
	}

	left, right := opts.walk(b.X), opts.walk(b.Y)
	if !opts.check(left) || !opts.check(right) {
		return BinaryExpressionInfo{}, false
	}

	return BinaryExpressionInfo{Node: b, Left: left, Op: b.Op, Right: right}, true
}

// Operands returns the operands of a chain of the same associative operator,
// left to right. For a && b && c it returns a, b and c.
//
// Parenthesized sub-chains are flattened only when [WalkDownParentheses] is set.
func (i BinaryExpressionInfo) Operands(opts Options) []ast.Expr {
	if i.Node == nil {
		return nil
	}

	var operands []ast.Expr

	var collect func(e ast.Expr)
	collect = func(e ast.Expr) {
		if b, ok := opts.walk(e).(*ast.BinaryExpr); ok && b.Op == i.Op && associative(i.Op) {
			collect(b.X)
			collect(b.Y)

			return
		}

		operands = append(operands, opts.walk(e))
	}

	collect(i.Node.X)
	collect(i.Node.Y)

	return operands
}

func associative(op token.Token) bool {
	switch op {
	case token.LAND, token.LOR:
		return true
	}

	return false
}
