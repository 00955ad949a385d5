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

// JumpKind is the statement leaving the reduced if when its condition does not hold.
type JumpKind int

//go:generate go tool stringer -type JumpKind -linecomment
const (
	// NoJump indicates that no jump statement applies.
	NoJump JumpKind = iota // none

	// Return leaves the function.
	Return // return

	// Break leaves a switch, select or loop.
	Break // break

	// Continue starts the next loop iteration.
	Continue // continue

	// Goto jumps to a label.
	Goto // goto

	// Panic is a call that never returns, like panic or os.Exit.
	Panic // panic
)
