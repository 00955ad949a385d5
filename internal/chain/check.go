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

package chain

import (
	"context"
	"go/ast"

	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/report"
)

// Check reports chainable runs in the statement list.
func Check(ctx context.Context, p *report.Pass, methods *Methods, list []ast.Stmt) {
	for _, run := range Runs(ctx, p.TypesInfo, methods, list) {
		first, last := run.Links[0].Stmt, run.Links[len(run.Links)-1].Stmt

		if p.File.HasComments(first.Pos(), last.End()) {
			p.Declined(ctx, config.MethodChain, first, "Comments between calls")

			continue
		}

		doc, ok := p.Document(ctx, first)
		if !ok {
			return
		}

		fixed, err := Fix(doc, run)
		if err != nil {
			p.Declined(ctx, config.MethodChain, first, "Can't chain calls", "error", err)

			continue
		}

		p.Report(config.MethodChain, first, "calls on "+run.Var.Name()+" can be chained", fixed)
	}
}
