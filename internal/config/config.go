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

package config

// Rule represents a single rewrite rule as a bit flag.
type Rule uint16

const (
	// ReduceIfNesting inverts terminal if statements to reduce nesting.
	ReduceIfNesting Rule = 1 << iota

	// IfToSwitch converts if-else-if chains comparing one value to a switch statement.
	IfToSwitch

	// RedundantWrapper detects methods that only forward to the promoted method of an embedded field.
	RedundantWrapper

	// MethodChain merges consecutive calls on the same receiver into a fluent chain.
	MethodChain

	// BoolCompare simplifies comparisons with boolean literals.
	BoolCompare

	// RedundantNilCheck removes nil checks implied by a following len comparison.
	RedundantNilCheck

	// InlineReturn inlines a variable that is returned immediately after its declaration.
	InlineReturn

	// FuncValue replaces function literals that only forward their parameter with the function itself.
	FuncValue

	// SimplifyConstraint simplifies type parameter constraints.
	SimplifyConstraint

	// IfReturnBool replaces if statements returning or assigning boolean literals with the condition.
	IfReturnBool

	// NoRules is the empty rule set.
	NoRules Rule = 0

	// AllRules enables every rule.
	AllRules = ReduceIfNesting | IfToSwitch | RedundantWrapper | MethodChain | BoolCompare |
		RedundantNilCheck | InlineReturn | FuncValue | SimplifyConstraint | IfReturnBool
)

// Config represents behavioral options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// SuggestFixes specifies whether diagnostics carry suggested fixes.
	SuggestFixes
)
