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

// Package syntax recognizes syntactic shapes in Go source.
//
// Every extractor is a total function returning a flat value describing the
// destructured parts of one shape plus a success flag. Extractors fail closed:
// missing children and, unless [AllowMissing] is given, subtrees containing
// parser errors make the match fail. Redundant parentheses around operands are
// unwrapped when [WalkDownParentheses] is set.
//
// Extractors are purely syntactic unless their signature takes a *types.Info.
package syntax
