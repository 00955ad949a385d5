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

package ifswitch

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/report"
)

// Check reports the if / else if chain starting at c when it can be a switch.
func Check(ctx context.Context, p *report.Pass, c inspector.Cursor) {
	a, ok := Analyze(ctx, p.TypesInfo, c)
	if !ok {
		return
	}

	if discardsComments(p, a) || p.File.ContainsDirectives(a.Chain.Node.Pos(), a.Chain.Node.End()) {
		p.Declined(ctx, config.IfToSwitch, a.Chain.Node, "Comments in conditions")

		return
	}

	doc, ok := p.Document(ctx, a.Chain.Node)
	if !ok {
		return
	}

	fixed, err := Fix(doc, a)
	if err != nil {
		p.Declined(ctx, config.IfToSwitch, a.Chain.Node, "Can't convert to switch", "error", err)

		return
	}

	rng := ifHeader{a.Chain.Node}

	p.Report(config.IfToSwitch, rng, "if-else chain can be converted to a switch on "+types.ExprString(a.Discriminant), fixed)
}

// discardsComments reports whether a comment lies in the text replaced by the
// switch header and case clauses.
func discardsComments(p *report.Pass, a Analysis) bool {
	start := a.Chain.Node.Pos()

	for _, branch := range a.Chain.Branches {
		if p.File.HasComments(start, branch.Body.Lbrace+1) {
			return true
		}

		start = branch.Body.Rbrace
	}

	return false
}

// ifHeader ranges over the if keyword and the condition.
type ifHeader struct{ *ast.IfStmt }

func (h ifHeader) End() token.Pos { return h.Body.Lbrace }
