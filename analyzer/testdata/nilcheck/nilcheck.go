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

package nilcheck

type holder struct{ items []int }

func check(s []int, m map[string]int, ch chan int, h *holder) {
	if s != nil && len(s) > 0 { // want "nil check of s is implied by the len comparison"
		println()
	}

	if m == nil || len(m) == 0 { // want "nil check of m is implied"
		println()
	}

	_ = ch != nil && len(ch) != 0 // want "nil check of ch"

	_ = h != nil && h.items != nil && len(h.items) > 1 // want "nil check of h.items"

	_ = s != nil && len(s) >= 0

	_ = s == nil || len(s) > 0

	_ = h != nil && h.items != nil
}
