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

package funcvalue

import "strconv"

func apply(values []int, f func(int) string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, f(v))
	}

	return out
}

func double(n int) int { return 2 * n }

func use(values []int) {
	_ = apply(values, func(n int) string { return strconv.Itoa(n) }) // want "function literal can be replaced by strconv.Itoa"

	var f func(int) int = func(n int) int { return double(n) } // want "function literal can be replaced by double"
	_ = f

	_ = apply(values, func(n int) string { return strconv.Itoa(n + 1) })

	_ = func(x int64) string { return strconv.FormatInt(x, 10) }
}
