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

package inline

func compute() int { return 42 }

func direct() int {
	v := compute()
	return v // want "variable v can be returned directly"
}

func declared() string {
	var s = "x" + "y"
	return s // want "variable s can be returned directly"
}

func typed() int64 {
	var n int64 = 1
	return n
}

func used() int {
	v := compute()
	println(v)
	return v
}

func blank() int {
	_ = compute()
	return 0
}
