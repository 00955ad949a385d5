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

// Package analyzer implements the reshape static analysis pass.
//
// # Overview
//
// Reshape finds code that can be expressed with less nesting or fewer
// tokens and offers the rewrite as a suggested fix. Every diagnostic carries
// a stable rule identifier as its category:
//
//	RS1001 nesting     invert a trailing if to leave early
//	RS1002 switch      if-else chain comparing one value to constants
//	RS1003 wrapper     method forwarding to an embedded field
//	RS1004 chain       consecutive calls on the same variable
//	RS1005 boolcmp     comparison with true or false
//	RS1006 nilcheck    nil check implied by a len comparison
//	RS1007 inline      variable returned right after its declaration
//	RS1008 funcvalue   function literal forwarding its parameter
//	RS1009 constraint  interface{} and single-element constraints
//	RS1010 ifreturn    if statement returning or assigning true and false
//
// # Example
//
// Before:
//
//	func process(items []Item) {
//	    for _, item := range items {
//	        if item.Valid() {
//	            handle(item)
//	        }
//	    }
//	}
//
// After applying the suggested fix:
//
//	func process(items []Item) {
//	    for _, item := range items {
//	        if !item.Valid() {
//	            continue
//	        }
//	        handle(item)
//	    }
//	}
//
// # Configuration
//
// Rules are enabled by default and can be switched off with flags named after
// the rule (-switch=false), in a TOML file passed with -config, or with
// [Option] values. A line comment //nolint:reshape, //nolint:RS1002 or
// //nolint:switch suppresses diagnostics on that line.
package analyzer
