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

// Package nesting reduces the nesting of if statements by inverting their condition.
//
// An if statement without else that ends a function, loop body or switch clause
//
//	for _, v := range values {
//		if v.Valid() {
//			process(v)
//		}
//	}
//
// is rewritten to leave early:
//
//	for _, v := range values {
//		if !v.Valid() {
//			continue
//		}
//		process(v)
//	}
package nesting

import (
	"context"
	"go/ast"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/report"
	"fillmore-labs.com/reshape/internal/tracker"
)

// Check reports the if statement at c when it can be reduced.
func Check(ctx context.Context, p *report.Pass, c inspector.Cursor, opts Options) {
	n, ok := c.Node().(*ast.IfStmt)
	if !ok {
		return
	}

	k := Checker{Info: p.TypesInfo, Tracker: tracker.New(p.TypesInfo), Options: opts}

	a := k.Analyze(ctx, c)
	if !a.Success {
		return
	}

	// Comments between if and { would be lost.
	if p.File.HasComments(n.Pos(), n.Body.Lbrace) || p.File.ContainsDirectives(n.Pos(), n.End()) {
		p.Declined(ctx, config.ReduceIfNesting, n, "Comments in condition")

		return
	}

	if a.Jump != nil && p.File.HasComments(a.Jump.Pos(), a.Jump.End()) {
		p.Declined(ctx, config.ReduceIfNesting, n, "Comments in jump statement")

		return
	}

	doc, ok := p.Document(ctx, n)
	if !ok {
		return
	}

	fixed, err := Fix(doc, p.TypesInfo, n, a)
	if err != nil {
		p.Declined(ctx, config.ReduceIfNesting, n, "Can't reduce nesting", "error", err)

		return
	}

	p.Report(config.ReduceIfNesting, n, "if statement can be inverted with an early "+a.JumpKind.String()+" to reduce nesting", fixed)
}
