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

import "go/ast"

// Options parameterize which if statements are considered.
type Options uint8

const (
	// AllowLoop accepts if statements ending a loop body, reduced with continue.
	AllowLoop Options = 1 << iota

	// AllowSwitchSection accepts if statements ending a case or select clause, reduced with break.
	AllowSwitchSection

	// AllowNestedFix reports an if statement even when the enclosing if can be reduced, too.
	AllowNestedFix

	// DefaultOptions reports only the outermost reducible if statement.
	DefaultOptions = AllowLoop | AllowSwitchSection
)

// Has reports whether all flags in f are set.
func (o Options) Has(f Options) bool {
	return o&f == f
}

// Analysis is the verdict for one if statement.
type Analysis struct {
	// TopNode is the node the jump leaves: the function, loop, switch or select,
	// or the statement an explicit jump follows.
	TopNode ast.Node

	// JumpKind is the kind of jump placed into the inverted if.
	JumpKind JumpKind

	// Jump is the explicit jump statement following the if, nil when the jump is implied.
	Jump ast.Stmt

	// Success is true when the if can be reduced.
	Success bool
}
