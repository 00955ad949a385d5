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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/reshape/analyzer/level"
	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/run"
)

// Option configures specific behavior of a [New] reshape analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fixes", o.fixes)
}

// WithNesting is an [Option] to configure the nesting reduction level.
func WithNesting(nesting level.Nesting) Option { return nestingOption{nesting: nesting} }

type nestingOption struct{ nesting level.Nesting }

func (o nestingOption) apply(r *run.Options) {
	r.Nesting = o.nesting
}

func (o nestingOption) LogAttr() slog.Attr {
	return slog.Any("nesting", o.nesting)
}

// WithRule is an [Option] to enable or disable a rule by its stable identifier ("RS1002")
// or its name ("switch"). An unknown rule makes the analyzer fail.
func WithRule(rule string, enabled bool) Option { return ruleOption{rule: rule, enabled: enabled} }

type ruleOption struct {
	rule    string
	enabled bool
}

func (o ruleOption) apply(r *run.Options) {
	rule, err := config.LookupRule(o.rule)
	if err != nil {
		r.Err = err

		return
	}

	r.Rules.Set(rule, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.rule, o.enabled)
}

// WithOnly is an [Option] that disables every rule except the named ones.
func WithOnly(rules ...string) Option {
	opts := make(Options, 0, len(rules)+2)
	opts = append(opts, onlyOption{}, WithNesting(level.NestingOff))

	for _, rule := range rules {
		if rule == "nesting" || rule == config.ReduceIfNesting.Info().ID {
			opts[1] = WithNesting(level.NestingTop)
		}

		opts = append(opts, WithRule(rule, true))
	}

	return opts
}

type onlyOption struct{}

func (onlyOption) apply(r *run.Options) {
	r.Rules.Clear()
}

func (onlyOption) LogAttr() slog.Attr {
	return slog.Bool("only", true)
}

// WithConfigFile is an [Option] to read rule settings from a TOML file.
func WithConfigFile(path string) Option { return configFileOption{path: path} }

type configFileOption struct{ path string }

func (o configFileOption) apply(r *run.Options) {
	r.ConfigFile = o.path
}

func (o configFileOption) LogAttr() slog.Attr {
	return slog.String("config", o.path)
}

// WithLogger is an [Option] to receive debug output about declined rewrites.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
