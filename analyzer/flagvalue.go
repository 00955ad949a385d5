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
	"strconv"

	"fillmore-labs.com/reshape/internal/config"
)

// maskValue is a boolean [flag.Value] switching a single flag of a [config.BitMask].
type maskValue[T config.Rule | config.Config] struct {
	mask *config.BitMask[T]
	flag T
}

// newRuleValue returns a flag value enabling or disabling rule.
func newRuleValue(rules *config.BitMask[config.Rule], rule config.Rule) maskValue[config.Rule] {
	return maskValue[config.Rule]{mask: rules, flag: rule}
}

// newBehaviorValue returns a flag value switching a behavioral option.
func newBehaviorValue(behavior *config.BitMask[config.Config], value config.Config) maskValue[config.Config] {
	return maskValue[config.Config]{mask: behavior, flag: value}
}

// Set implements [flag.Value].
func (v maskValue[_]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	v.mask.Set(v.flag, b)

	return nil
}

// String implements [flag.Value]. The zero value, used by the flag package
// to detect defaults, reports false.
func (v maskValue[_]) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v maskValue[_]) Get() any { return v.enabled() }

// IsBoolFlag marks the value as a boolean flag, so -rule is short for -rule=true.
func (maskValue[_]) IsBoolFlag() bool { return true }

func (v maskValue[_]) enabled() bool {
	return v.mask != nil && v.mask.Enabled(v.flag)
}

// parseBool is [strconv.ParseBool] extended by "on" and "off".
func parseBool(s string) (bool, error) {
	switch s {
	case "on", "On", "ON":
		return true, nil

	case "off", "Off", "OFF":
		return false, nil
	}

	return strconv.ParseBool(s)
}
