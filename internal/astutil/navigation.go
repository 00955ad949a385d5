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
	"go/token"
	"reflect"
	"strings"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// WalkDownParentheses returns the innermost expression inside redundant parentheses.
// It returns nil for a nil expression.
func WalkDownParentheses(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenExpr)
		if !ok || p == nil {
			return e
		}

		e = p.X
	}
}

// WalkUpParentheses returns the cursor of the outermost parenthesized expression wrapping c.
func WalkUpParentheses(c inspector.Cursor) inspector.Cursor {
	for {
		if ek, _ := c.ParentEdge(); ek != edge.ParenExpr_X {
			return c
		}

		c = c.Parent()
	}
}

// FirstAncestor returns the nearest proper ancestor of c whose type is one of types.
func FirstAncestor(c inspector.Cursor, types ...ast.Node) (inspector.Cursor, bool) {
	if c.Inspector() == nil || c.Node() == nil {
		return inspector.Cursor{}, false
	}

	for a := range c.Parent().Enclosing(types...) {
		return a, true
	}

	return inspector.Cursor{}, false
}

// IsMissing reports whether n is absent or a parser-synthesized placeholder.
func IsMissing(n ast.Node) bool {
	switch n := n.(type) {
	case nil:
		return true

	case *ast.BadExpr, *ast.BadStmt, *ast.BadDecl:
		return true

	case *ast.Ident:
		return n == nil || !n.NamePos.IsValid()

	case *ast.BlockStmt:
		return n == nil || !n.Rbrace.IsValid()
	}

	if v := reflect.ValueOf(n); v.Kind() == reflect.Pointer && v.IsNil() {
		return true
	}

	return !n.Pos().IsValid()
}

// ContainsErrors reports whether the subtree rooted at n contains nodes the parser
// synthesized for malformed input.
func ContainsErrors(n ast.Node) bool {
	if IsMissing(n) {
		return true
	}

	found := false
	ast.Inspect(n, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.BadExpr, *ast.BadStmt, *ast.BadDecl:
			found = true
		}

		return !found
	})

	return found
}

// IsDirective reports whether a comment is a compiler or tool directive.
func IsDirective(c *ast.Comment) bool {
	text := c.Text
	switch {
	case strings.HasPrefix(text, "//line "), strings.HasPrefix(text, "/*line "):
		return true

	case strings.HasPrefix(text, "//export "), strings.HasPrefix(text, "//extern "):
		return true

	case strings.HasPrefix(text, "//go:"):
		return true
	}

	return false
}

// ContainsDirectives reports whether any directive comment lies in [pos, end).
func (c CurrentFile) ContainsDirectives(pos, end token.Pos) bool {
	for _, g := range c.Comments(pos, end) {
		for _, comment := range g.List {
			if comment.Pos() >= pos && comment.End() <= end && IsDirective(comment) {
				return true
			}
		}
	}

	return false
}

// StatementList returns the statement list containing the statement at c and its index.
func StatementList(c inspector.Cursor) (list []ast.Stmt, index int, ok bool) {
	if c.Inspector() == nil || c.Node() == nil {
		return nil, -1, false
	}

	ek, index := c.ParentEdge()
	switch ek {
	case edge.BlockStmt_List:
		return c.Parent().Node().(*ast.BlockStmt).List, index, true

	case edge.CaseClause_Body:
		return c.Parent().Node().(*ast.CaseClause).Body, index, true

	case edge.CommClause_Body:
		return c.Parent().Node().(*ast.CommClause).Body, index, true

	default:
		return nil, -1, false
	}
}

// EnclosingFunc returns the type and body of the innermost function containing c.
func EnclosingFunc(c inspector.Cursor) (*ast.FuncType, *ast.BlockStmt, bool) {
	f, ok := FirstAncestor(c, (*ast.FuncDecl)(nil), (*ast.FuncLit)(nil))
	if !ok {
		return nil, nil, false
	}

	switch n := f.Node().(type) {
	case *ast.FuncDecl:
		return n.Type, n.Body, n.Body != nil

	case *ast.FuncLit:
		return n.Type, n.Body, n.Body != nil
	}

	return nil, nil, false
}

// IsBoolLiteral reports whether e is the identifier true or false, returning its value.
// Callers needing certainty must confirm the identifier refers to the universe constant.
func IsBoolLiteral(e ast.Expr) (value, ok bool) {
	id, ok := WalkDownParentheses(e).(*ast.Ident)
	if !ok {
		return false, false
	}

	switch id.Name {
	case "true":
		return true, true

	case "false":
		return false, true
	}

	return false, false
}
