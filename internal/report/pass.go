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

// Package report emits rule diagnostics with their suggested fixes.
package report

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/reshape/internal/astutil"
	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/rewrite"
)

// Pass carries the per-file state rules need to report diagnostics.
type Pass struct {
	*analysis.Pass

	// File is the file currently analyzed.
	File astutil.CurrentFile

	// Solution provides the source documents edited by suggested fixes.
	Solution *rewrite.Solution

	// Logger receives debug output about declined rewrites.
	Logger *slog.Logger

	// Fixes enables suggested fixes.
	Fixes bool
}

// Document returns the unedited document containing n.
func (p *Pass) Document(ctx context.Context, n ast.Node) (rewrite.Document, bool) {
	doc, err := p.Solution.Document(n.Pos())
	if err != nil {
		p.Logger.DebugContext(ctx, "Can't load document", slog.Any("error", err))

		return rewrite.Document{}, false
	}

	return doc, true
}

// Declined logs why a rule did not report a match.
func (p *Pass) Declined(ctx context.Context, rule config.Rule, n ast.Node, reason string, args ...any) {
	if !p.Logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	attrs := append([]any{
		slog.String("rule", rule.Info().ID),
		slog.String("pos", p.Fset.Position(n.Pos()).String()),
	}, args...)

	p.Logger.DebugContext(ctx, reason, attrs...)
}

// Suppressed reports whether a nolint comment on the line of pos disables rule.
func (p *Pass) Suppressed(rule config.Rule, pos token.Pos) bool {
	info := rule.Info()

	return p.File.NoLintComment(pos, info.ID, info.Name)
}

// Report emits a diagnostic for rule on rng. The fix is attached when fixes are
// enabled and the document carries edits.
func (p *Pass) Report(rule config.Rule, rng analysis.Range, message string, fix rewrite.Document) {
	if p.Suppressed(rule, rng.Pos()) {
		return
	}

	info := rule.Info()

	d := analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: info.ID,
		Message:  message + " (" + info.ID + ")",
		URL:      "#" + info.ID,
	}

	if p.Fixes && fix.Changed() {
		d.SuggestedFixes = []analysis.SuggestedFix{rewrite.Fix(info.ID+": "+info.Fix, fix)}
	}

	p.Pass.Report(d)
}

// InternalError reports a bug in the analyzer rather than an issue in the analyzed code.
func (p *Pass) InternalError(ctx context.Context, rng analysis.Range, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	p.Logger.ErrorContext(ctx, "Internal error",
		slog.String("pos", p.Fset.Position(rng.Pos()).String()),
		slog.String("error", msg),
	)

	p.Pass.Report(analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: "internal",
		Message:  "Internal Error: " + msg,
	})
}
