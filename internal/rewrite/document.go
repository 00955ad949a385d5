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
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

var (
	// ErrOverlap is returned when an edit overlaps an edit already in the document.
	ErrOverlap = errors.New("overlapping edit")

	// ErrPosition is returned for positions outside of the document.
	ErrPosition = errors.New("position outside of document")
)

// Document is an immutable source file with pending edits.
type Document struct {
	file  *token.File
	src   []byte
	edits []edit // sorted by position, non-overlapping
}

type edit struct {
	pos, end int
	text     string
}

// NewDocument creates a document for the given file and its source.
func NewDocument(file *token.File, src []byte) (Document, error) {
	if file == nil {
		return Document{}, fmt.Errorf("no file: %w", ErrPosition)
	}

	if file.Size() != len(src) {
		return Document{}, fmt.Errorf("file %s has size %d, source %d: %w", file.Name(), file.Size(), len(src), ErrPosition)
	}

	return Document{file: file, src: src}, nil
}

// File returns the token file of the document.
func (d Document) File() *token.File { return d.file }

// Changed reports whether the document has edits.
func (d Document) Changed() bool { return len(d.edits) > 0 }

func (d Document) offset(pos token.Pos) (int, bool) {
	if d.file == nil || !pos.IsValid() {
		return 0, false
	}

	base := d.file.Base()
	if int(pos) < base || int(pos) > base+d.file.Size() {
		return 0, false
	}

	return int(pos) - base, true
}

func (d Document) offsets(pos, end token.Pos) (int, int, error) {
	start, ok1 := d.offset(pos)
	stop, ok2 := d.offset(end)

	if !ok1 || !ok2 || start > stop {
		return 0, 0, fmt.Errorf("range [%d, %d): %w", pos, end, ErrPosition)
	}

	return start, stop, nil
}

// Text returns the original source text in [pos, end), or the empty string for an invalid range.
func (d Document) Text(pos, end token.Pos) string {
	start, stop, err := d.offsets(pos, end)
	if err != nil {
		return ""
	}

	return string(d.src[start:stop])
}

// NodeText returns the original source text of n.
func (d Document) NodeText(n ast.Node) string {
	return d.Text(n.Pos(), n.End())
}

// Replace returns a document where [pos, end) is replaced by text.
func (d Document) Replace(pos, end token.Pos, text string) (Document, error) {
	start, stop, err := d.offsets(pos, end)
	if err != nil {
		return d, err
	}

	i, _ := slices.BinarySearchFunc(d.edits, start, func(e edit, start int) int { return e.pos - start })

	// Edits are sorted and disjoint, so only the neighbors can conflict.
	if i > 0 && d.edits[i-1].end > start {
		return d, fmt.Errorf("range [%d, %d): %w", pos, end, ErrOverlap)
	}

	if i < len(d.edits) && (d.edits[i].pos == start || d.edits[i].pos < stop) {
		return d, fmt.Errorf("range [%d, %d): %w", pos, end, ErrOverlap)
	}

	edits := slices.Insert(slices.Clip(d.edits), i, edit{pos: start, end: stop, text: text})

	return Document{file: d.file, src: d.src, edits: edits}, nil
}

// ReplaceNode returns a document where n is replaced by text.
func (d Document) ReplaceNode(n ast.Node, text string) (Document, error) {
	return d.Replace(n.Pos(), n.End(), text)
}

// Insert returns a document with text inserted at pos.
func (d Document) Insert(pos token.Pos, text string) (Document, error) {
	return d.Replace(pos, pos, text)
}

// Delete returns a document with [pos, end) removed.
func (d Document) Delete(pos, end token.Pos) (Document, error) {
	return d.Replace(pos, end, "")
}

// Edits returns the edits of the document in source order.
func (d Document) Edits() []analysis.TextEdit {
	if len(d.edits) == 0 {
		return nil
	}

	base := d.file.Base()
	edits := make([]analysis.TextEdit, 0, len(d.edits))

	for _, e := range d.edits {
		edits = append(edits, analysis.TextEdit{
			Pos:     token.Pos(base + e.pos),
			End:     token.Pos(base + e.end),
			NewText: []byte(e.text),
		})
	}

	return edits
}

// Apply returns the edited source, formatted with gofmt.
func (d Document) Apply() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(d.src))

	last := 0
	for _, e := range d.edits {
		buf.Write(d.src[last:e.pos]) // ignore error
		buf.WriteString(e.text)      // ignore error
		last = e.end
	}

	buf.Write(d.src[last:]) // ignore error

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("can't format %s: %w", d.file.Name(), err)
	}

	return out, nil
}
