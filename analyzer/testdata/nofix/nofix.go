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

package nofix

func values(ok bool, s []int) int {
	if ok == true { // want "comparison with a boolean literal can be simplified \\(RS1005\\)"
		println()
	}

	_ = s != nil && len(s) > 0 // want "nil check of s is implied by the len comparison \\(RS1006\\)"

	_ = ok == false //nolint:boolcmp

	_ = ok != true //nolint:RS1005

	_ = ok != false //nolint:reshape

	v := len(s)
	return v // want "variable v can be returned directly \\(RS1007\\)"
}

func pick(x int) string {
	if x == 1 { // want "if-else chain can be converted to a switch on x \\(RS1002\\)"
		return "one"
	} else if x == 2 {
		return "two"
	}

	return "many"
}

func check(f float64) bool {
	if f > 0 { return true }; return false // want "returning the condition \\(RS1010\\)"
}
