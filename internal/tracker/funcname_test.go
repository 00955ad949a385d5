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

package tracker_test

import (
	"go/ast"
	"go/types"
	"testing"

	"fillmore-labs.com/reshape/internal/testsource"
	. "fillmore-labs.com/reshape/internal/tracker"
)

const funcNames = `package test

import (
	"log"
	"os"
)

type Logger struct{}

func (Logger) Fatal()   {}
func (*Logger) Reset() {}

type Ref = *Logger

type List[T any] struct{}

func (*List[T]) Push(T) {}

type Exiter interface{ Exit() }

func exit() {}

func calls(r Ref, l List[int], e Exiter, a interface{ Abort() }, err error) {
	exit()
	os.Exit(1)
	log.Fatal()
	Logger{}.Fatal()
	r.Reset()
	l.Push(1)
	e.Exit()
	a.Abort()
	_ = err.Error()
	(*log.Logger).Fatalf(nil, "")
}
`

func TestFuncNameOf(t *testing.T) {
	t.Parallel()

	fset, f, in := testsource.ParseFile(t, funcNames)
	_, info := testsource.Check(t, fset, f)

	var got []string
	for c := range in.Root().Preorder((*ast.CallExpr)(nil)) {
		var id *ast.Ident
		switch fun := c.Node().(*ast.CallExpr).Fun.(type) {
		case *ast.Ident:
			id = fun

		case *ast.SelectorExpr:
			id = fun.Sel
		}

		fn, ok := info.Uses[id].(*types.Func)
		if !ok {
			continue
		}

		got = append(got, FuncNameOf(fn).String())
	}

	want := [...]string{
		"test.exit",
		"os.Exit",
		"log.Fatal",
		"(test.Logger).Fatal",
		"(test.Logger).Reset",
		"(test.List).Push",
		"(test.Exiter).Exit",
		"(interface).Abort",
		"(error).Error",
		"(log.Logger).Fatalf",
	}

	if len(got) != len(want) {
		t.Fatalf("Got %d names %q, want %d", len(got), got, len(want))
	}

	for i, name := range want {
		if got[i] != name {
			t.Errorf("Call %d: got %q, want %q", i, got[i], name)
		}
	}
}

func TestFuncNameString(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name FuncName
		want string
	}{
		{FuncName{Name: "panic"}, "panic"},
		{FuncName{Path: "os", Name: "Exit"}, "os.Exit"},
		{FuncName{Receiver: "error", Name: "Error"}, "(error).Error"},
		{FuncName{Path: "testing", Receiver: "common", Name: "FailNow"}, "(testing.common).FailNow"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := tt.name.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
