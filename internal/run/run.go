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

// Package run drives the reshape rules over the files of an analysis pass.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/reshape/internal/astutil"
	"fillmore-labs.com/reshape/internal/chain"
	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/ifswitch"
	"fillmore-labs.com/reshape/internal/nesting"
	"fillmore-labs.com/reshape/internal/report"
	"fillmore-labs.com/reshape/internal/rewrite"
	"fillmore-labs.com/reshape/internal/simplify"
	"fillmore-labs.com/reshape/internal/wrapper"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the reshape rules.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	s, err := r.settings()
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}

	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("reshape: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "Reshape")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	rp := &report.Pass{
		Pass:     p,
		Solution: rewrite.NewSolution(p.Fset, p.ReadFile),
		Logger:   s.logger,
		Fixes:    s.behavior.Enabled(config.SuggestFixes),
	}

	methods := chain.NewMethods(p.TypesInfo, p.Files)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		rp.File = astutil.NewCurrentFile(p.Fset, file)
		if !rp.File.Valid() {
			rp.InternalError(ctx, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if rp.File.Generated() && !s.behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		trace.WithRegion(ctx, "File", func() { s.checkFile(ctx, rp, methods, f) })
	}

	return nil, nil
}

// nodeTypes are the anchors of all rules.
var nodeTypes = []ast.Node{
	(*ast.FuncDecl)(nil),
	(*ast.IfStmt)(nil),
	(*ast.BlockStmt)(nil),
	(*ast.CaseClause)(nil),
	(*ast.CommClause)(nil),
	(*ast.BinaryExpr)(nil),
	(*ast.FuncLit)(nil),
	(*ast.Field)(nil),
}

// checkFile dispatches the nodes of a file to the enabled rules.
func (s settings) checkFile(ctx context.Context, p *report.Pass, methods *chain.Methods, f inspector.Cursor) {
	f.Inspect(nodeTypes, func(c inspector.Cursor) bool {
		if ctx.Err() != nil {
			return false
		}

		switch n := c.Node().(type) {
		case *ast.FuncDecl:
			// Skip functions with nolint comment
			if n.Doc != nil && astutil.CommentHasNoLint(n.Doc.List[len(n.Doc.List)-1]) {
				return false
			}

			if s.enabled(config.RedundantWrapper) {
				wrapper.Check(ctx, p, n)
			}

		case *ast.IfStmt:
			if s.enabled(config.ReduceIfNesting) {
				nesting.Check(ctx, p, c, s.nesting)
			}

			if s.enabled(config.IfToSwitch) {
				ifswitch.Check(ctx, p, c)
			}

			if s.enabled(config.IfReturnBool) {
				simplify.CheckIfBool(ctx, p, c)
			}

		case *ast.BlockStmt:
			s.checkList(ctx, p, methods, n.List)

		case *ast.CaseClause:
			s.checkList(ctx, p, methods, n.Body)

		case *ast.CommClause:
			s.checkList(ctx, p, methods, n.Body)

		case *ast.BinaryExpr:
			if s.enabled(config.BoolCompare) {
				simplify.CheckBoolComparison(ctx, p, n)
			}

			if s.enabled(config.RedundantNilCheck) {
				simplify.CheckNilCheck(ctx, p, n)
			}

		case *ast.FuncLit:
			if s.enabled(config.FuncValue) {
				simplify.CheckFuncValue(ctx, p, n)
			}

		case *ast.Field:
			if s.enabled(config.SimplifyConstraint) {
				simplify.CheckConstraint(ctx, p, c)
			}

		default:
			p.InternalError(ctx, n, "Unexpected node type: %T", n)

			return false
		}

		return true
	})
}

// checkList runs the rules anchored on statement lists.
func (s settings) checkList(ctx context.Context, p *report.Pass, methods *chain.Methods, list []ast.Stmt) {
	if s.enabled(config.MethodChain) {
		chain.Check(ctx, p, methods, list)
	}

	if s.enabled(config.InlineReturn) {
		simplify.CheckInlineReturn(ctx, p, list)
	}
}
