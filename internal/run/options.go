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

package run

import (
	"fmt"
	"log/slog"
	"sync"

	"fillmore-labs.com/reshape/analyzer/level"
	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/nesting"
)

// Options represent configuration options for the reshape analyzer.
type Options struct {
	// Rules represent the rules to be enabled.
	Rules config.BitMask[config.Rule]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Config]

	// Nesting is the nesting reduction level.
	Nesting level.Nesting

	// ConfigFile is an optional TOML rule configuration file, applied on top of the other options.
	ConfigFile string

	// Logger receives debug output.
	Logger *slog.Logger

	// Err is a configuration error reported by every run.
	Err error

	settings func() (settings, error)
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	r := &Options{
		Rules:    config.NewBitMask(config.AllRules),
		Behavior: config.NewBitMask(config.SuggestFixes),
		Nesting:  level.NestingTop,
		Logger:   slog.New(slog.DiscardHandler),
	}

	// Flags are parsed after construction, so the configuration is resolved on first use.
	r.settings = sync.OnceValues(r.resolve)

	return r
}

// settings are the effective options of a run.
type settings struct {
	rules    config.BitMask[config.Rule]
	behavior config.BitMask[config.Config]
	nesting  nesting.Options
	logger   *slog.Logger
}

func (s settings) enabled(rule config.Rule) bool {
	return s.rules.Enabled(rule)
}

// resolve merges the configuration file into the options.
func (r *Options) resolve() (settings, error) {
	if r.Err != nil {
		return settings{}, r.Err
	}

	s := settings{
		rules:    r.Rules,
		behavior: r.Behavior,
		nesting:  nesting.DefaultOptions,
		logger:   r.Logger,
	}

	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	lvl := r.Nesting

	if r.ConfigFile != "" {
		f, err := config.LoadFile(r.ConfigFile)
		if err != nil {
			return settings{}, err
		}

		if err := f.ApplyRules(&s.rules); err != nil {
			return settings{}, fmt.Errorf("config %q: %w", r.ConfigFile, err)
		}

		f.ApplyBehavior(&s.behavior)

		if f.Nesting != "" {
			if err := lvl.UnmarshalText([]byte(f.Nesting)); err != nil {
				return settings{}, fmt.Errorf("config %q: %w", r.ConfigFile, err)
			}
		}
	}

	switch lvl {
	case level.NestingOff:
		s.rules.Disable(config.ReduceIfNesting)

	case level.NestingNested:
		s.nesting |= nesting.AllowNestedFix
	}

	s.logger.Debug("Configuration",
		slog.String("rules", s.rules.String()),
		slog.String("nesting", lvl.String()),
		slog.Bool("generated", s.behavior.Enabled(config.IncludeGenerated)),
		slog.Bool("fixes", s.behavior.Enabled(config.SuggestFixes)),
	)

	return s, nil
}
