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

// Package level defines text-marshaled option levels for the analyzer.
package level

import (
	"fmt"
	"strings"
)

// Nesting specifies the nesting reduction level.
type Nesting uint8

const (
	// NestingTop reports only the outermost reducible if statement.
	NestingTop Nesting = iota

	// NestingNested also reports if statements nested in reducible ones.
	NestingNested

	// NestingOff disables nesting reduction.
	NestingOff
)

// MarshalText implements [encoding.TextMarshaler].
func (o Nesting) MarshalText() ([]byte, error) {
	switch o {
	case NestingTop:
		return []byte("top"), nil

	case NestingNested:
		return []byte("nested"), nil

	case NestingOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown nesting level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Nesting) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "true", "on", "top":
		*o = NestingTop

	case "nested", "full":
		*o = NestingNested

	case "off", "false":
		*o = NestingOff

	default:
		return fmt.Errorf("unknown nesting level %q", string(text))
	}

	return nil
}

// String implements [fmt.Stringer].
func (o Nesting) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Nesting(%d)", uint8(o))
	}

	return string(text)
}
