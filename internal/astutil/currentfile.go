// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// reshape is the name of the linter.
const reshape = "reshape"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// File returns the syntax tree of the file.
func (c CurrentFile) File() *ast.File {
	return c.file
}

// Handle returns the [token.File] of the file.
func (c CurrentFile) Handle() *token.File {
	return c.handle
}

// Lines returns the number of lines a node spans.
func (c CurrentFile) Lines(n ast.Node) int {
	return c.Line(n.End()) - c.Line(n.Pos()) + 1
}

// Line returns the line number of a position.
func (c CurrentFile) Line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// Comments returns all comment groups overlapping [pos, end).
func (c CurrentFile) Comments(pos, end token.Pos) []*ast.CommentGroup {
	if c.file == nil {
		return nil
	}

	comments := c.file.Comments

	// first comment group ending after pos
	i, _ := slices.BinarySearchFunc(comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int {
			if c.End() <= p {
				return -1
			}

			return 1
		})

	j := i
	for j < len(comments) && comments[j].Pos() < end {
		j++
	}

	return comments[i:j]
}

// HasComments reports whether any comment overlaps [pos, end).
func (c CurrentFile) HasComments(pos, end token.Pos) bool {
	return len(c.Comments(pos, end)) > 0
}

// NoLintComment checks if a line is followed by a //nolint:reshape comment or
// a //nolint comment naming one of the given rule identifiers.
func (c CurrentFile) NoLintComment(pos token.Pos, names ...string) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after the position
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]

	if c.Line(comment.Pos()) != c.Line(pos) {
		return false // not on this line
	}

	return CommentHasNoLint(comment, names...)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:reshape` directive
// or a directive naming one of the given rule identifiers.
func CommentHasNoLint(comment *ast.Comment, names ...string) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		l := strings.TrimSpace(linter)
		if strings.EqualFold(l, reshape) || strings.EqualFold(l, "all") {
			return true
		}

		if slices.ContainsFunc(names, func(name string) bool { return strings.EqualFold(l, name) }) {
			return true
		}
	}

	return false
}
