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

package nesting

func process(items []int) {
	for _, item := range items {
		if item > 0 { // want "if statement can be inverted with an early continue to reduce nesting"
			println(item)
			println(item * 2)
		}
	}
}

func last(ok bool) {
	println("start")
	if ok { // want "early return"
		println("ok")
	}
}

func explicit(v int) int {
	if v != 0 { // want "early return"
		println(v)
	}
	return v
}

func sections(v int) {
	switch v {
	case 1:
		if v > 0 { // want "early break"
			println(v)
		}
	}
}

func outer(a, b bool) {
	println()
	if a { // want "early return"
		if b {
			println()
		}
	}
}

func sole(ok bool) {
	if ok {
		println("sole")
	}
}

func withElse(ok bool) {
	println("start")
	if ok {
		println("yes")
	} else {
		println("no")
	}
}

func notLast(ok bool) {
	if ok {
		println("ok")
	}
	println("end")
}

func conflict(x int) {
	println()
	if x > 0 {
		x := 2
		println(x)
	}
}
