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

package nesting_test

import (
	"context"
	"go/ast"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	. "fillmore-labs.com/reshape/internal/nesting"
	"fillmore-labs.com/reshape/internal/testsource"
	"fillmore-labs.com/reshape/internal/tracker"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	const nested = DefaultOptions | AllowNestedFix

	tests := [...]struct {
		name     string
		src      string
		opts     Options
		wantOK   bool
		wantKind JumpKind
		explicit bool
	}{
		{"sole statement", "if true { println() }", DefaultOptions, false, NoJump, false},
		{"last in function", "c := true; if c { println() }", DefaultOptions, true, Return, false},
		{"loop", "for i := range 3 { if i > 0 { println(i) } }", DefaultOptions, true, Continue, false},
		{"loop not allowed", "for i := range 3 { if i > 0 { println(i) } }", AllowSwitchSection, false, NoJump, false},
		{"switch", "switch x := 1; x { case 1: if x > 0 { println() } }", DefaultOptions, true, Break, false},
		{"select", "var ch chan int; select { case v := <-ch: if v > 0 { println() } }", DefaultOptions, true, Break, false},
		{"switch not allowed", "switch x := 1; x { case 1: if x > 0 { println() } }", AllowLoop, false, NoJump, false},
		{"explicit return", "c := true; if c { println() }; return", DefaultOptions, true, Return, true},
		{"explicit panic", "c := true; if c { println() }; panic(c)", DefaultOptions, true, Panic, true},
		{"explicit goto", "c := true; if c { println() }; goto L; L: println()", DefaultOptions, false, NoJump, false},
		{"labeled break", "L: for { c := true; if c { println() }; break L }", DefaultOptions, true, Break, true},
		{"not last", "c := true; if c { println() }; println()", DefaultOptions, false, NoJump, false},
		{"else", "c := true; if c { println() } else { println() }", DefaultOptions, false, NoJump, false},
		{"init", "if c := true; c { println() }; println()", DefaultOptions, false, NoJump, false},
		{"empty body", "c := true; if c {}", DefaultOptions, false, NoJump, false},
		{"mixed jumps", "for i := range 3 { if i > 0 { println(); return } }", DefaultOptions, false, NoJump, false},
		{"same jump", "c := true; if c { println(); return }", DefaultOptions, true, Return, false},
		{"name conflict", "x := 1; if x > 0 { x := 2; println(x) }", DefaultOptions, false, NoJump, false},
		{"no conflict", "c := true; if c { y := 2; println(y) }", DefaultOptions, true, Return, false},
		{"jump uses hoisted name", "x := 1; _ = func() int { if x > 0 { x := 2; println(x) }; return x }", DefaultOptions, false, NoJump, false},
		{"func literal with result", "_ = func() int { c := true; if c { println() }; return 0 }", DefaultOptions, true, Return, true},
		{"nested", "a, b := true, false; if a { if b { println() } }", nested, true, Return, false},
		{"nested without nested fix", "a, b := true, false; if a { if b { println() } }", DefaultOptions, false, NoJump, false},
		{"nested in sole if", "b := false; _ = func() { if b { if !b { println() } } }", DefaultOptions, true, Return, false},
		{"nested in else", "a, b := true, false; if a { println() } else { if b { println() } }; println()", nested, false, NoJump, false},
		{"nested before jump", "a, b := true, false; if a { if b { println() } }; return", nested, true, Return, true},
		{"nested jump shadowed", "a, b, x := true, false, 1; _ = func() int { if a { x := 2; _ = x; if b { println() } }; return x }", nested, false, NoJump, false},
		{"nested jump unshadowed", "a, b, x := true, false, 1; _ = func() int { if a { y := 2; _ = y; if b { println() } }; return x }", nested, true, Return, true},
		{"block", "c := true; { if c { println() } }", nested, true, Return, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f, _, body := testsource.Parse(t, tt.src)
			_, info := testsource.Check(t, fset, f)

			k := Checker{Info: info, Tracker: tracker.New(info), Options: tt.opts}

			a := k.Analyze(context.Background(), lastIf(body))
			if a.Success != tt.wantOK {
				t.Fatalf("Analyze() = %v, want %v", a.Success, tt.wantOK)
			}

			if !a.Success {
				return
			}

			if a.JumpKind != tt.wantKind {
				t.Errorf("Got jump kind %v, want %v", a.JumpKind, tt.wantKind)
			}

			if (a.Jump != nil) != tt.explicit {
				t.Errorf("Got jump statement %v, want explicit %v", a.Jump, tt.explicit)
			}

			if a.TopNode == nil {
				t.Error("Expected top node")
			}
		})
	}
}

func TestAnalyzeCanceled(t *testing.T) {
	t.Parallel()

	fset, f, _, body := testsource.Parse(t, "c := true; if c { println() }")
	_, info := testsource.Check(t, fset, f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	k := Checker{Info: info, Tracker: tracker.New(info), Options: DefaultOptions}
	if a := k.Analyze(ctx, lastIf(body)); a.Success {
		t.Error("Expected canceled analysis to decline")
	}
}

// lastIf returns the innermost, last if statement.
func lastIf(body inspector.Cursor) inspector.Cursor {
	var c inspector.Cursor
	for i := range body.Preorder((*ast.IfStmt)(nil)) {
		c = i
	}

	return c
}
