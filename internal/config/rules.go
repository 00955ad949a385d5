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

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// ErrUnknownRule is returned when a rule identifier or name can't be resolved.
var ErrUnknownRule = errors.New("unknown rule")

// RuleInfo is the static, stable description of a [Rule].
type RuleInfo struct {
	// ID is the stable identifier, never reused across versions.
	ID string

	// Name is the short name used for flags and settings.
	Name string

	// Doc describes what the rule checks.
	Doc string

	// Fix describes the suggested fix.
	Fix string
}

var ruleInfos = [...]RuleInfo{
	{"RS1001", "nesting", "if statement can be inverted to reduce nesting", "Invert if to reduce nesting"},
	{"RS1002", "switch", "if-else chain can be converted to a switch statement", "Convert to switch"},
	{"RS1003", "wrapper", "method only forwards to the promoted method of an embedded field", "Remove forwarding method"},
	{"RS1004", "chain", "consecutive calls on the same receiver can be chained", "Use method chaining"},
	{"RS1005", "boolcmp", "comparison with a boolean literal can be simplified", "Simplify boolean comparison"},
	{"RS1006", "nilcheck", "nil check is implied by the following len comparison", "Remove redundant nil check"},
	{"RS1007", "inline", "variable is returned immediately after its declaration", "Inline variable"},
	{"RS1008", "funcvalue", "function literal only forwards its parameter to a function", "Use function value"},
	{"RS1009", "constraint", "type parameter constraint can be simplified", "Simplify constraint"},
	{"RS1010", "ifreturn", "if statement can be replaced by its condition", "Use condition directly"},
}

// Info returns the static description of a single rule.
// It returns the zero [RuleInfo] for the empty set or combined rules.
func (r Rule) Info() RuleInfo {
	if bits.OnesCount16(uint16(r)) != 1 {
		return RuleInfo{}
	}

	i := bits.TrailingZeros16(uint16(r))
	if i >= len(ruleInfos) {
		return RuleInfo{}
	}

	return ruleInfos[i]
}

// String implements [fmt.Stringer].
func (r Rule) String() string {
	if info := r.Info(); info.ID != "" {
		return info.Name
	}

	var b strings.Builder
	for rule := range r.All() {
		if b.Len() > 0 {
			b.WriteByte('|')
		}

		b.WriteString(rule.Info().Name)
	}

	if b.Len() == 0 {
		return fmt.Sprintf("Rule(%#x)", uint16(r))
	}

	return b.String()
}

// All yields the single rules contained in r, in ID order.
func (r Rule) All() iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		for i := range ruleInfos {
			rule := Rule(1) << i
			if r&rule == 0 {
				continue
			}

			if !yield(rule) {
				return
			}
		}
	}
}

// LookupRule resolves a rule by its stable ID or its name, case-insensitively.
func LookupRule(key string) (Rule, error) {
	key = strings.TrimSpace(key)
	for i, info := range ruleInfos {
		if strings.EqualFold(info.ID, key) || strings.EqualFold(info.Name, key) {
			return Rule(1) << i, nil
		}
	}

	return NoRules, fmt.Errorf("%w: %q", ErrUnknownRule, key)
}
