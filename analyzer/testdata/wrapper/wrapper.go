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

package wrapper

type Base struct{}

func (Base) Name() string { return "base" }

func (b *Base) Reset() {}

type Derived struct {
	Base
}

func (d Derived) Name() string { return d.Base.Name() } // want "method Derived.Name \\(exported\\) only forwards to embedded field Base"

type Counting struct {
	Base
	n int
}

func (c Counting) Name() string { return c.Base.Name() + "!" }

func (c *Counting) Reset() { c.Base.Reset() } // want "method Counting.Reset"

type inner struct{ Base }

func (i inner) Name() string { return i.Base.Name() } // want "exported on unexported type"

type Value struct{ Base }

func (v Value) Reset() { v.Base.Reset() }

type Documented struct{ Base }

// Name returns the name of the base.
func (d Documented) Name() string { return d.Base.Name() }

type Other struct{}

func (Other) Name() string { return "other" }

type Nested struct{ Base }

type Wrapped struct{ Other }

type Mixed struct {
	Nested
	Wrapped
}

func (m Mixed) Name() string { return m.Nested.Name() }

type Pointer struct{ Base }

func (p *Pointer) Name() string { return p.Base.Name() }
