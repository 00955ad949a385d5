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

// Package rewrite builds suggested fixes as text edits over the original source.
//
// A [Document] is an immutable view of one file together with a set of
// non-overlapping edits. Every edit operation returns a new Document and leaves
// the receiver untouched, so partial rewrites can be discarded at any point.
// Replacement text is built from the original source, which keeps comments and
// formatting outside the edited ranges intact.
package rewrite
