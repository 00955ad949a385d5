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

// Package tracker recognizes calls that never return to their caller.
package tracker

import (
	"go/ast"
	"go/types"
)

// Tracker answers questions about calls for one package.
type Tracker struct {
	info *types.Info
}

// New creates and returns a new Tracker.
func New(info *types.Info) Tracker {
	return Tracker{info: info}
}

// CantReturn reports whether the call never returns.
func (t Tracker) CantReturn(n *ast.CallExpr) bool {
	return CantReturn(t.info, n)
}

// Exit returns the call of a statement like panic(err) or os.Exit(1).
func (t Tracker) Exit(stmt ast.Stmt) (*ast.CallExpr, bool) {
	s, ok := stmt.(*ast.ExprStmt)
	if !ok || s == nil {
		return nil, false
	}

	call, ok := s.X.(*ast.CallExpr)
	if !ok || !t.CantReturn(call) {
		return nil, false
	}

	return call, true
}
