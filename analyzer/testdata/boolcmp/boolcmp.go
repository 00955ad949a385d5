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

package boolcmp

import "database/sql"

func compare(ok bool, ns sql.NullString, x, y float64) {
	if ok == true { // want "comparison with a boolean literal can be simplified"
		println()
	}

	if false == ok { // want "comparison with a boolean literal"
		println()
	}

	if ns.Valid != true { // want "validity check of ns can be simplified"
		println()
	}

	_ = (x < y) == false // want "comparison with a boolean literal"

	_ = ok != false // want "comparison with a boolean literal"
}

type flag bool

func named(f flag) bool {
	return f == true
}

func shadowed() bool {
	true := false
	ok := true
	return ok == true
}
