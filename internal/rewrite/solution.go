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
	"fmt"
	"go/token"
	"os"

	"golang.org/x/tools/go/analysis"
)

// ReadFileFunc reads the source of a file, like [analysis.Pass.ReadFile].
type ReadFileFunc func(filename string) ([]byte, error)

// Solution provides the documents of one package, keyed by file.
//
// Sources are read lazily, at most once per file. A Solution belongs to one pass
// and is not safe for concurrent use.
type Solution struct {
	fset *token.FileSet
	read ReadFileFunc
	docs map[*token.File]Document
}

// NewSolution creates a Solution reading file contents with read, or [os.ReadFile] when read is nil.
func NewSolution(fset *token.FileSet, read ReadFileFunc) *Solution {
	if read == nil {
		read = os.ReadFile
	}

	return &Solution{fset: fset, read: read, docs: make(map[*token.File]Document)}
}

// Document returns the unedited document containing pos.
func (s *Solution) Document(pos token.Pos) (Document, error) {
	file := s.fset.File(pos)
	if file == nil {
		return Document{}, fmt.Errorf("position %d: %w", pos, ErrPosition)
	}

	if d, ok := s.docs[file]; ok {
		return d, nil
	}

	src, err := s.read(file.Name())
	if err != nil {
		return Document{}, fmt.Errorf("can't read %s: %w", file.Name(), err)
	}

	d, err := NewDocument(file, src)
	if err != nil {
		return Document{}, err
	}

	s.docs[file] = d

	return d, nil
}

// Fix combines the edits of documents, possibly from different files, into one suggested fix.
func Fix(message string, docs ...Document) analysis.SuggestedFix {
	var edits []analysis.TextEdit
	for _, d := range docs {
		edits = append(edits, d.Edits()...)
	}

	return analysis.SuggestedFix{Message: message, TextEdits: edits}
}
