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

package rewrite

import (
	"go/ast"
	"go/token"
	"strings"
)

// Indent is one level of indentation in gofmt-formatted source.
const Indent = "\t"

// Indentation returns the leading white space of the line containing pos.
func (d Document) Indentation(pos token.Pos) string {
	off, ok := d.offset(pos)
	if !ok {
		return ""
	}

	start := off
	for start > 0 && d.src[start-1] != '\n' {
		start--
	}

	end := start
	for end < len(d.src) && (d.src[end] == ' ' || d.src[end] == '\t') {
		end++
	}

	return string(d.src[start:end])
}

// ExpandToLines widens [pos, end) to whole lines, including the trailing newline,
// when only white space separates the range from the line boundaries.
// Otherwise the range is returned unchanged.
func (d Document) ExpandToLines(pos, end token.Pos) (token.Pos, token.Pos) {
	start, stop, err := d.offsets(pos, end)
	if err != nil {
		return pos, end
	}

	first := start
	for first > 0 && (d.src[first-1] == ' ' || d.src[first-1] == '\t') {
		first--
	}

	if first > 0 && d.src[first-1] != '\n' {
		return pos, end
	}

	last := stop
	for last < len(d.src) && (d.src[last] == ' ' || d.src[last] == '\t' || d.src[last] == '\r') {
		last++
	}

	switch {
	case last == len(d.src):

	case d.src[last] == '\n':
		last++

	default:
		return pos, end
	}

	base := d.file.Base()

	return token.Pos(base + first), token.Pos(base + last)
}

// Reindent replaces the indentation prefix from with to on every line but the first.
// Lines not starting with from are left alone; blank lines stay blank.
func Reindent(text, from, to string) string {
	if from == to || !strings.Contains(text, "\n") {
		return text
	}

	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		line := lines[i]

		switch {
		case strings.TrimSpace(line) == "":
			lines[i] = ""

		case strings.HasPrefix(line, from):
			lines[i] = to + line[len(from):]
		}
	}

	return strings.Join(lines, "\n")
}

// HasMultilineString reports whether n contains a raw string literal spanning lines.
// Re-indenting such a literal would change its value.
func HasMultilineString(n ast.Node) bool {
	found := false
	ast.Inspect(n, func(n ast.Node) bool {
		if lit, ok := n.(*ast.BasicLit); ok && lit.Kind == token.STRING && strings.Contains(lit.Value, "\n") {
			found = true
		}

		return !found
	})

	return found
}
