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

package wrapper

import (
	"context"
	"fmt"
	"go/ast"

	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/report"
	"fillmore-labs.com/reshape/internal/syntax"
)

// Check reports fn when it only forwards to the promoted method of an embedded field.
func Check(ctx context.Context, p *report.Pass, fn *ast.FuncDecl) {
	if fn.Doc != nil {
		return
	}

	a, ok := Analyze(p.TypesInfo, fn)
	if !ok {
		return
	}

	if p.File.HasComments(fn.Pos(), fn.End()) {
		p.Declined(ctx, config.RedundantWrapper, fn, "Comments in method")

		return
	}

	doc, ok := p.Document(ctx, fn)
	if !ok {
		return
	}

	fixed, err := doc.Delete(doc.ExpandToLines(fn.Pos(), fn.End()))
	if err != nil {
		p.Declined(ctx, config.RedundantWrapper, fn, "Can't delete method", "error", err)

		return
	}

	acc, ok := syntax.AccessibilityOf(fn, syntax.DefaultOptions)
	if !ok || acc.Receiver == nil {
		return
	}

	p.Report(config.RedundantWrapper, fn.Name,
		fmt.Sprintf("method %s.%s (%s) only forwards to embedded field %s",
			acc.Receiver.Name, acc.Name.Name, acc.Accessibility(), a.Field.Name()), fixed)
}
