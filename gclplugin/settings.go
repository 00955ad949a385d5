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

package gclplugin

import (
	"fillmore-labs.com/reshape/analyzer"
	"fillmore-labs.com/reshape/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Nesting sets the nesting reduction level ("off", "top" or "nested").
	Nesting *level.Nesting `json:"nesting,omitzero"`
	// Switch enables converting if-else chains to switch statements.
	Switch *bool `json:"switch,omitzero"`
	// Wrapper enables reporting methods that only forward to an embedded field.
	Wrapper *bool `json:"wrapper,omitzero"`
	// Chain enables method chaining.
	Chain *bool `json:"chain,omitzero"`
	// BoolCompare enables simplifying comparisons with boolean literals.
	BoolCompare *bool `json:"boolcmp,omitzero"`
	// NilCheck enables removing nil checks implied by len comparisons.
	NilCheck *bool `json:"nilcheck,omitzero"`
	// Inline enables returning variables directly.
	Inline *bool `json:"inline,omitzero"`
	// FuncValue enables replacing forwarding function literals.
	FuncValue *bool `json:"funcvalue,omitzero"`
	// Constraint enables simplifying type parameter constraints.
	Constraint *bool `json:"constraint,omitzero"`
	// IfReturn enables replacing if statements by their condition.
	IfReturn *bool `json:"ifreturn,omitzero"`
	// Fixes enables suggested fixes.
	Fixes *bool `json:"fixes,omitzero"`
	// Config is the path of a TOML rule configuration file.
	Config *string `json:"config,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the reshape analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Config, analyzer.WithConfigFile)
	opts = appendOption(opts, s.Nesting, analyzer.WithNesting)
	opts = appendOption(opts, s.Switch, rule("switch"))
	opts = appendOption(opts, s.Wrapper, rule("wrapper"))
	opts = appendOption(opts, s.Chain, rule("chain"))
	opts = appendOption(opts, s.BoolCompare, rule("boolcmp"))
	opts = appendOption(opts, s.NilCheck, rule("nilcheck"))
	opts = appendOption(opts, s.Inline, rule("inline"))
	opts = appendOption(opts, s.FuncValue, rule("funcvalue"))
	opts = appendOption(opts, s.Constraint, rule("constraint"))
	opts = appendOption(opts, s.IfReturn, rule("ifreturn"))
	opts = appendOption(opts, s.Fixes, analyzer.WithFixes)

	return opts
}

func rule(name string) func(bool) analyzer.Option {
	return func(enabled bool) analyzer.Option { return analyzer.WithRule(name, enabled) }
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
