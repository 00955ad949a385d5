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

package ifreturn

func positive(v int) bool {
	if v > 0 { return true }; return false // want "if statement can be replaced by returning the condition"
}

func nonEmpty(s string) bool {
	if s == "" { return false } else { return true } // want "returning the condition"
}

func notNegative(f float64) bool {
	if f < 0 { return false }; return true // want "returning the condition"
}

func both(a, b bool) {
	var ok bool
	if a && b { ok = true } else { ok = false } // want "if statement can be replaced by assigning the condition to ok"
	println(ok)
}

func same(v int) bool {
	if v > 0 {
		return true
	}

	return true
}

func text(v int) string {
	if v > 0 {
		return "yes"
	}

	return "no"
}
