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
	"strings"

	"fillmore-labs.com/reshape/internal/rewrite"
)

// Fix replaces the statements of run with a single chained statement.
func Fix(doc rewrite.Document, run Run) (rewrite.Document, error) {
	first, last := run.Links[0], run.Links[len(run.Links)-1]

	var b strings.Builder
	if run.Form == Assign {
		b.WriteString(first.Root.Name + " = ")
	}

	b.WriteString(doc.NodeText(first.Call.Node))

	for _, link := range run.Links[1:] {
		b.WriteString(doc.Text(link.Root.End(), link.Call.Node.End()))
	}

	return doc.Replace(first.Stmt.Pos(), last.Stmt.End(), b.String())
}
