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

package nested

func nested(a, b bool) {
	println()
	if a { // want "early return"
		if b { // want "early return"
			println()
		}
	}
}

func loop(values [][]int) {
	for _, inner := range values {
		if len(inner) > 0 { // want "early continue"
			for _, v := range inner {
				if v > 0 { // want "early continue"
					println(v)
				}
			}
		}
	}
}
