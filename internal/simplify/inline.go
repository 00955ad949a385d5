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

package simplify

import (
	"context"
	"go/ast"
	"go/types"

	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/report"
	"fillmore-labs.com/reshape/internal/rewrite"
	"fillmore-labs.com/reshape/internal/syntax"
)

// InlineReturn is a variable declaration immediately followed by returning the variable.
type InlineReturn struct {
	Decl   syntax.SingleVariableDeclarationInfo
	Return *ast.ReturnStmt
}

// InlineReturns finds x := v; return x pairs in a statement list.
func InlineReturns(ctx context.Context, info *types.Info, list []ast.Stmt) []InlineReturn {
	var found []InlineReturn

	for i := 0; i+1 < len(list); i++ {
		if ctx.Err() != nil {
			return nil
		}

		decl, ok := syntax.SingleVariableDeclaration(list[i], syntax.DefaultOptions)
		if !ok || decl.Type != nil || decl.Name.Name == "_" {
			continue
		}

		ret, ok := list[i+1].(*ast.ReturnStmt)
		if !ok || len(ret.Results) != 1 {
			continue
		}

		id, ok := ret.Results[0].(*ast.Ident)
		if !ok {
			continue
		}

		if obj := info.Defs[decl.Name]; obj == nil || info.Uses[id] != obj {
			continue
		}

		found = append(found, InlineReturn{Decl: decl, Return: ret})
	}

	return found
}

// Fix returns the value directly.
func (r InlineReturn) Fix(doc rewrite.Document) (rewrite.Document, error) {
	return doc.Replace(r.Decl.Node.Pos(), r.Return.End(), "return "+doc.NodeText(r.Decl.Value))
}

// CheckInlineReturn reports variables returned right after their declaration.
func CheckInlineReturn(ctx context.Context, p *report.Pass, list []ast.Stmt) {
	for _, r := range InlineReturns(ctx, p.TypesInfo, list) {
		if p.File.HasComments(r.Decl.Node.Pos(), r.Return.End()) {
			p.Declined(ctx, config.InlineReturn, r.Decl.Node, "Comments in declaration")

			continue
		}

		doc, ok := p.Document(ctx, r.Decl.Node)
		if !ok {
			return
		}

		fixed, err := r.Fix(doc)
		if err != nil {
			p.Declined(ctx, config.InlineReturn, r.Decl.Node, "Can't inline variable", "error", err)

			continue
		}

		p.Report(config.InlineReturn, r.Return, "variable "+r.Decl.Name.Name+" can be returned directly", fixed)
	}
}
