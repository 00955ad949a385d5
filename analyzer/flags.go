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
	"flag"

	"fillmore-labs.com/reshape/internal/config"
	"fillmore-labs.com/reshape/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(o *run.Options, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newBehaviorValue(&o.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newBehaviorValue(&o.Behavior, config.SuggestFixes), "fixes", "offer suggested fixes")
	flags.TextVar(&o.Nesting, "nesting", o.Nesting, "nesting reduction level (off, top or nested)")
	flags.StringVar(&o.ConfigFile, "config", o.ConfigFile, "TOML rule configuration file")

	// The nesting rule is controlled by the level above.
	for rule := range (config.AllRules &^ config.ReduceIfNesting).All() {
		info := rule.Info()
		flags.Var(newRuleValue(&o.Rules, rule), info.Name, "enable "+info.ID+": "+info.Doc)
	}
}
