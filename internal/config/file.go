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
	"fmt"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// File is the optional rule configuration file.
//
// Example TOML configuration:
//
//	generated = false
//	nesting = "nested"
//
//	[rules]
//	RS1002 = false
//	chain = false
type File struct {
	// Generated enables diagnostics in generated files.
	Generated *bool `koanf:"generated"`

	// Fixes enables suggested fixes.
	Fixes *bool `koanf:"fixes"`

	// Nesting is the nesting reduction level ("off", "top" or "nested").
	Nesting string `koanf:"nesting"`

	// Rules enables or disables rules by stable ID or name.
	Rules map[string]bool `koanf:"rules"`
}

// LoadFile reads a TOML rule configuration file.
func LoadFile(path string) (File, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return File{}, fmt.Errorf("can't load config %q: %w", path, err)
	}

	var f File
	if err := k.UnmarshalWithConf("", &f, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return File{}, fmt.Errorf("can't decode config %q: %w", path, err)
	}

	return f, nil
}

// ApplyRules enables or disables the rules listed in the file.
func (f File) ApplyRules(rules *BitMask[Rule]) error {
	for key, enabled := range f.Rules {
		rule, err := LookupRule(key)
		if err != nil {
			return err
		}

		rules.Set(rule, enabled)
	}

	return nil
}

// ApplyBehavior applies the behavioral settings listed in the file.
func (f File) ApplyBehavior(behavior *BitMask[Config]) {
	if f.Generated != nil {
		behavior.Set(IncludeGenerated, *f.Generated)
	}

	if f.Fixes != nil {
		behavior.Set(SuggestFixes, *f.Fixes)
	}
}
