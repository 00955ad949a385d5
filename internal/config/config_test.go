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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/reshape/internal/config"
)

func TestRuleInfo(t *testing.T) {
	t.Parallel()

	seen := make(map[string]Rule)

	for rule := range AllRules.All() {
		info := rule.Info()
		require.NotEmpty(t, info.ID, "rule %#x", uint16(rule))

		_, dup := seen[info.ID]
		assert.False(t, dup, "duplicate ID %s", info.ID)
		seen[info.ID] = rule

		byID, err := LookupRule(info.ID)
		require.NoError(t, err)
		assert.Equal(t, rule, byID)

		byName, err := LookupRule(info.Name)
		require.NoError(t, err)
		assert.Equal(t, rule, byName)
	}

	assert.Len(t, seen, 10)
}

func TestRuleString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nesting", ReduceIfNesting.String())
	assert.Equal(t, "nesting|chain", (ReduceIfNesting | MethodChain).String())
	assert.Equal(t, "Rule(0x0)", NoRules.String())
	assert.Empty(t, (IfToSwitch | BoolCompare).Info().ID)
}

func TestLookupRuleUnknown(t *testing.T) {
	t.Parallel()

	_, err := LookupRule("RS9999")
	require.ErrorIs(t, err, ErrUnknownRule)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	const content = `
generated = true
nesting = "nested"

[rules]
RS1002 = false
chain = false
inline = true
`

	path := filepath.Join(t.TempDir(), "reshape.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "nested", f.Nesting)
	require.NotNil(t, f.Generated)
	assert.True(t, *f.Generated)
	assert.Nil(t, f.Fixes)

	rules := NewBitMask(AllRules &^ InlineReturn)
	require.NoError(t, f.ApplyRules(&rules))

	assert.False(t, rules.Enabled(IfToSwitch))
	assert.False(t, rules.Enabled(MethodChain))
	assert.True(t, rules.Enabled(InlineReturn))
	assert.True(t, rules.Enabled(ReduceIfNesting))

	var behavior BitMask[Config]
	f.ApplyBehavior(&behavior)
	assert.True(t, behavior.Enabled(IncludeGenerated))
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)

	path := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(path, []byte("[rules]\nbogus = true\n"), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)

	var rules BitMask[Rule]
	require.ErrorIs(t, f.ApplyRules(&rules), ErrUnknownRule)
}

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(ReduceIfNesting, IfToSwitch)
	assert.True(t, b.Enabled(ReduceIfNesting))

	b.Set(ReduceIfNesting, false)
	assert.False(t, b.Enabled(ReduceIfNesting))
	assert.True(t, b.Enabled(IfToSwitch))

	b.Set(MethodChain, true)
	assert.Equal(t, IfToSwitch|MethodChain, b.Value())
	assert.Equal(t, "switch|chain", b.String())

	b.Clear()
	assert.False(t, b.Enabled(AllRules))
	assert.Equal(t, "0x1", NewBitMask(IncludeGenerated).String())
}
