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

package ifswitch

import (
	"strings"

	"fillmore-labs.com/reshape/internal/rewrite"
)

// Fix replaces the chain with a switch statement.
//
// Case bodies are indented like if bodies in gofmt-formatted source, so their text is kept as is.
func Fix(doc rewrite.Document, a Analysis) (rewrite.Document, error) {
	indent := doc.Indentation(a.Chain.Node.Pos())

	var b strings.Builder
	b.WriteString("switch ")

	if a.Chain.Init != nil {
		b.WriteString(doc.NodeText(a.Chain.Init))
		b.WriteString("; ")
	}

	b.WriteString(doc.NodeText(a.Discriminant))
	b.WriteString(" {\n")

	for _, c := range a.Cases {
		b.WriteString(indent)

		if len(c.Labels) == 0 {
			b.WriteString("default:\n")
		} else {
			b.WriteString("case ")

			for i, label := range c.Labels {
				if i > 0 {
					b.WriteString(", ")
				}

				b.WriteString(doc.NodeText(label))
			}

			b.WriteString(":\n")
		}

		if body := strings.TrimSpace(doc.Text(c.Body.Lbrace+1, c.Body.Rbrace)); body != "" {
			b.WriteString(indent + rewrite.Indent + body + "\n")
		}
	}

	b.WriteString(indent + "}")

	return doc.ReplaceNode(a.Chain.Node, b.String())
}
