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

package ifswitch

func classify(x int) {
	if x == 1 || x == 2 { // want "if-else chain can be converted to a switch on x"
		println("small")
	} else if x == 3 {
		println("three")
	} else {
		println("other")
	}
}

type Color int

const (
	Red Color = iota
	Green
)

func named(g func() Color) {
	if v := g(); v == Red { // want "switch on v"
		println("red")
	} else if Green == v {
		println("green")
	}
}

func mixed(x, y int) {
	if x == 1 {
		println("x")
	} else if y == 2 {
		println("y")
	}
}

func single(x int) {
	if x == 1 {
		println("one")
	} else {
		println("other")
	}
}

func loop(values []int) {
	for _, v := range values {
		if v == 1 {
			break
		} else if v == 2 {
			println(v)
		}
	}
}

func comment(x int) {
	if x == 1 {
		println("one")
	} else if x == 2 /* two */ {
		println("two")
	}
}
