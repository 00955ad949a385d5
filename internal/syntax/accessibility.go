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

package syntax

import "go/ast"

// Accessibility classifies who can refer to a declaration.
type Accessibility uint8

const (
	// Unexported declarations are visible in the declaring package only.
	Unexported Accessibility = iota

	// Exported declarations are visible to importing packages.
	Exported

	// ExportedOnUnexported is an exported method of an unexported type. It is reachable
	// from other packages only through values of the type or through embedding.
	ExportedOnUnexported
)

func (a Accessibility) String() string {
	switch a {
	case Unexported:
		return "unexported"

	case Exported:
		return "exported"

	case ExportedOnUnexported:
		return "exported on unexported type"

	default:
		return "invalid"
	}
}

// AccessibilityInfo locates the identifiers that encode the accessibility of a declaration.
type AccessibilityInfo struct {
	Node ast.Node
	Name *ast.Ident
	// Receiver is the base type name of a method receiver, nil otherwise.
	Receiver *ast.Ident
}

// Accessibility derives the accessibility from the identifiers.
func (i AccessibilityInfo) Accessibility() Accessibility {
	switch {
	case i.Name == nil || !i.Name.IsExported():
		return Unexported

	case i.Receiver != nil && !i.Receiver.IsExported():
		return ExportedOnUnexported

	default:
		return Exported
	}
}

// AccessibilityOf matches function, method and type declarations.
func AccessibilityOf(n ast.Node, opts Options) (AccessibilityInfo, bool) {
	switch n := n.(type) {
	case *ast.FuncDecl:
		if n == nil || !opts.check(n.Name) {
			break
		}

		info := AccessibilityInfo{Node: n, Name: n.Name}
		if n.Recv == nil {
			return info, true
		}

		recv, ok := ReceiverBase(n.Recv)
		if !ok {
			break
		}

		info.Receiver = recv

		return info, true

	case *ast.TypeSpec:
		if n == nil || !opts.check(n.Name) {
			break
		}

		return AccessibilityInfo{Node: n, Name: n.Name}, true
	}

	return AccessibilityInfo{}, false
}

// ReceiverBase returns the base type name of a receiver list such as (r *T[K]).
func ReceiverBase(recv *ast.FieldList) (*ast.Ident, bool) {
	if recv == nil || len(recv.List) != 1 {
		return nil, false
	}

	t := recv.List[0].Type
	for {
		switch x := t.(type) {
		case *ast.ParenExpr:
			t = x.X

		case *ast.StarExpr:
			t = x.X

		case *ast.IndexExpr:
			t = x.X

		case *ast.IndexListExpr:
			t = x.X

		case *ast.Ident:
			return x, x != nil && x.NamePos.IsValid()

		default:
			return nil, false
		}
	}
}
