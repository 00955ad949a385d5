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

// SimpleIfInfo destructures an if statement without else.
type SimpleIfInfo struct {
	Node      *ast.IfStmt
	Condition ast.Expr
	Body      *ast.BlockStmt
}

// SimpleIf matches an if statement without init statement and without else branch,
// which is not itself the else branch of another if.
func SimpleIf(c inspector.Cursor, opts Options) (SimpleIfInfo, bool) {
	n, ok := rootIf(c)
	if !ok || n.Init != nil || n.Else != nil {
		return SimpleIfInfo{}, false
	}

	cond, ok := ifParts(n, opts)
	if !ok {
		return SimpleIfInfo{}, false
	}

	return SimpleIfInfo{Node: n, Condition: cond, Body: n.Body}, true
}

// SimpleIfElseInfo destructures an if statement with a plain else block.
type SimpleIfElseInfo struct {
	Node      *ast.IfStmt
	Condition ast.Expr
	WhenTrue  *ast.BlockStmt
	WhenFalse *ast.BlockStmt
}

// SimpleIfElse matches if c { ... } else { ... } without init statement.
// An else if chain does not match.
func SimpleIfElse(c inspector.Cursor, opts Options) (SimpleIfElseInfo, bool) {
	n, ok := rootIf(c)
	if !ok || n.Init != nil {
		return SimpleIfElseInfo{}, false
	}

	els, ok := n.Else.(*ast.BlockStmt)
	if !ok || !opts.check(els) {
		return SimpleIfElseInfo{}, false
	}

	cond, ok := ifParts(n, opts)
	if !ok {
		return SimpleIfElseInfo{}, false
	}

	return SimpleIfElseInfo{Node: n, Condition: cond, WhenTrue: n.Body, WhenFalse: els}, true
}

// IfBranch is one branch of an if / else if / else chain.
// Condition is nil for the final else.
type IfBranch struct {
	Node      *ast.IfStmt
	Condition ast.Expr
	Body      *ast.BlockStmt
}

// IfChainInfo destructures a complete if / else if / else chain.
type IfChainInfo struct {
	Node     *ast.IfStmt
	Init     ast.Stmt
	Branches []IfBranch
}

// HasElse reports whether the chain ends with an unconditional else.
func (i IfChainInfo) HasElse() bool {
	return len(i.Branches) > 0 && i.Branches[len(i.Branches)-1].Condition == nil
}

// Conditional returns the number of branches guarded by a condition.
func (i IfChainInfo) Conditional() int {
	if i.HasElse() {
		return len(i.Branches) - 1
	}

	return len(i.Branches)
}

// IfChain walks an if statement and all of its else if continuations.
// Only the first if may have an init statement.
func IfChain(c inspector.Cursor, opts Options) (IfChainInfo, bool) {
	n, ok := rootIf(c)
	if !ok {
		return IfChainInfo{}, false
	}

	info := IfChainInfo{Node: n, Init: n.Init}
	if n.Init != nil && !opts.check(n.Init) {
		return IfChainInfo{}, false
	}

	for cur := n; ; {
		cond, ok := ifParts(cur, opts)
		if !ok {
			return IfChainInfo{}, false
		}

		info.Branches = append(info.Branches, IfBranch{Node: cur, Condition: cond, Body: cur.Body})

		switch els := cur.Else.(type) {
		case nil:
			return info, true

		case *ast.BlockStmt:
			if !opts.check(els) {
				return IfChainInfo{}, false
			}

			info.Branches = append(info.Branches, IfBranch{Body: els})

			return info, true

		case *ast.IfStmt:
			if els == nil || els.Init != nil {
				return IfChainInfo{}, false
			}

			cur = els

		default:
			return IfChainInfo{}, false
		}
	}
}

// rootIf returns the if statement at c when it is not the else branch of another if.
func rootIf(c inspector.Cursor) (*ast.IfStmt, bool) {
	if c.Inspector() == nil {
		return nil, false
	}

	n, ok := c.Node().(*ast.IfStmt)
	if !ok || n == nil {
		return nil, false
	}

	if ek, _ := c.ParentEdge(); ek == edge.IfStmt_Else {
		return nil, false
	}

	return n, true
}

func ifParts(n *ast.IfStmt, opts Options) (ast.Expr, bool) {
	cond := opts.walk(n.Cond)
	if !opts.check(cond) || !opts.check(n.Body) {
		return nil, false
	}

	return cond, true
}
