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

import "strings"

type Builder struct{ parts []string }

func (b Builder) With(s string) Builder { b.parts = append(b.parts, s); return b }

type Buffer struct{ data []byte }

func (b *Buffer) Add(s string) *Buffer { b.data = append(b.data, s...); return b }

func (b *Buffer) Clone() *Buffer { c := *b; return &c }

func build() Builder {
	var b Builder
	b = b.With("a"); b = b.With("b"); b = b.With("c") // want "calls on b can be chained"
	return b
}

func fill(buf *Buffer) {
	buf.Add("x"); buf.Add("y") // want "calls on buf can be chained"
}

func copied(buf *Buffer) {
	buf.Clone()
	buf.Add("x")
}

func self(b Builder) Builder {
	b = b.With("a")
	b = b.With(b.parts[0])
	return b
}

func std() string {
	var sb strings.Builder
	sb.WriteString("a")
	sb.WriteString("b")
	return sb.String()
}
