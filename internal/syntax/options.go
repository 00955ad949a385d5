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

	"fillmore-labs.com/reshape/internal/astutil"
)

// Options parameterize shape extraction.
type Options uint8

const (
	// AllowMissing accepts subtrees containing parser-synthesized nodes.
	AllowMissing Options = 1 << iota

	// WalkDownParentheses unwraps redundant parentheses around operands before matching.
	WalkDownParentheses

	// DefaultOptions are the options used by most callers.
	DefaultOptions = WalkDownParentheses
)

// Has reports whether all flags in f are set.
func (o Options) Has(f Options) bool {
	return o&f == f
}

func (o Options) walk(e ast.Expr) ast.Expr {
	if o.Has(WalkDownParentheses) {
		return astutil.WalkDownParentheses(e)
	}

	return e
}

// check reports whether n is present and, unless missing nodes are allowed, free of parser errors.
func (o Options) check(n ast.Node) bool {
	if astutil.IsMissing(n) {
		return false
	}

	return o.Has(AllowMissing) || !astutil.ContainsErrors(n)
}
