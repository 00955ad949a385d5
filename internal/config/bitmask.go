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

import "fmt"

// flag is the set of underlying types a [BitMask] can hold.
type flag interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask is a set of binary flags of type T, like the enabled [Rule]s of a run.
type BitMask[T flag] struct {
	value T
}

// NewBitMask returns a [BitMask] with the given flags enabled.
func NewBitMask[T flag](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, f := range flags {
		b.value |= f
	}

	return b
}

// Set enables or disables flags.
func (b *BitMask[T]) Set(flags T, enabled bool) {
	if enabled {
		b.value |= flags
	} else {
		b.value &^= flags
	}
}

// Disable clears flags.
func (b *BitMask[T]) Disable(flags T) { b.value &^= flags }

// Clear disables all flags.
func (b *BitMask[T]) Clear() { b.value = 0 }

// Enabled reports whether any of flags is set.
func (b BitMask[T]) Enabled(flags T) bool {
	return b.value&flags != 0
}

// Value returns the raw set of enabled flags.
func (b BitMask[T]) Value() T {
	return b.value
}

// String implements [fmt.Stringer], using the String method of T when present.
func (b BitMask[T]) String() string {
	if s, ok := any(b.value).(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%#x", uint64(b.value))
}
