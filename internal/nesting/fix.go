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

package nesting

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"fillmore-labs.com/reshape/internal/rewrite"
)

var (
	errMultilineString = errors.New("multi-line string literal can't be re-indented")
	errNoJump          = errors.New("no jump statement")
)

// Fix replaces the if statement n with its inverted form containing the jump, followed
// by the statements of its body, one level shallower.
func Fix(doc rewrite.Document, info *types.Info, n *ast.IfStmt, a Analysis) (rewrite.Document, error) {
	if rewrite.HasMultilineString(n.Body) || a.Jump != nil && rewrite.HasMultilineString(a.Jump) {
		return doc, errMultilineString
	}

	indent := doc.Indentation(n.Pos())

	var jump string

	switch {
	case a.Jump != nil:
		jump = rewrite.Reindent(doc.NodeText(a.Jump), doc.Indentation(a.Jump.Pos()), indent+rewrite.Indent)

	case a.JumpKind == Return, a.JumpKind == Break, a.JumpKind == Continue:
		jump = a.JumpKind.String()

	default:
		return doc, fmt.Errorf("implied %v: %w", a.JumpKind, errNoJump)
	}

	body := strings.TrimSpace(doc.Text(n.Body.Lbrace+1, n.Body.Rbrace))
	body = rewrite.Reindent(body, indent+rewrite.Indent, indent)

	var b strings.Builder
	b.WriteString("if ")
	b.WriteString(doc.Invert(info, n.Cond))
	b.WriteString(" {\n")
	b.WriteString(indent + rewrite.Indent + jump + "\n")
	b.WriteString(indent + "}\n")
	b.WriteString(indent + body)

	return doc.ReplaceNode(n, b.String())
}
