/*
AI-Powered Code Reviewer - A tool for static C++ code analysis
Copyright (C) 2023  Ah2022

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package ast

import "testing"

func TestNodeKindString(t *testing.T) {
	for _, testCase := range [...]struct {
		kind     NodeKind
		expected string
	}{
		{KindTranslationUnit, "TranslationUnit"},
		{KindVarDecl, "VarDecl"},
		{KindNewExpr, "NewExpr"},
		{KindUnknown, "Unknown"},
		{NodeKind(9999), "Unknown"},
	} {
		if actual := testCase.kind.String(); actual != testCase.expected {
			t.Errorf("String() = %q, expected %q", actual, testCase.expected)
		}
	}
}

func TestIsLiteral(t *testing.T) {
	literals := []NodeKind{
		KindIntegerLiteral, KindFloatingLiteral, KindStringLiteral,
		KindCharacterLiteral, KindBoolLiteral,
	}
	for _, k := range literals {
		if !k.IsLiteral() {
			t.Errorf("%v must be a literal", k)
		}
	}
	for _, k := range []NodeKind{KindVarDecl, KindCallExpr, KindUnknown} {
		if k.IsLiteral() {
			t.Errorf("%v must not be a literal", k)
		}
	}
}

func TestIsTerminator(t *testing.T) {
	for _, k := range []NodeKind{KindReturnStmt, KindBreakStmt, KindContinueStmt} {
		if !k.IsTerminator() {
			t.Errorf("%v must be a terminator", k)
		}
	}
	for _, k := range []NodeKind{KindIfStmt, KindCallExpr, KindCompoundStmt} {
		if k.IsTerminator() {
			t.Errorf("%v must not be a terminator", k)
		}
	}
}

func TestLocationString(t *testing.T) {
	loc := Location{Filename: "main.cpp", Line: 10, Column: 5}
	if actual := loc.String(); actual != "main.cpp:10:5" {
		t.Errorf("String() = %q", actual)
	}
}
