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

package deadcode

import (
	"reflect"
	"testing"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/ast"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/testlib"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

func TestAnalyzeAfterReturn(t *testing.T) {
	// return; x = 1; f(); if (...) {} -- the two flaggable statements are
	// reported, the if statement is not.
	tree := testlib.Tree("void f() {\n    return;\n    x = 1;\n    g();\n    if (x) {}\n}\n",
		testlib.NodeAt(ast.KindCompoundStmt, "", 1,
			testlib.NodeAt(ast.KindReturnStmt, "", 2),
			testlib.NodeAt(ast.KindBinaryOperator, "=", 3),
			testlib.NodeAt(ast.KindCallExpr, "g", 4),
			testlib.NodeAt(ast.KindIfStmt, "", 5)))

	expected := &issue.List{Issues: []*issue.Issue{
		{
			Kind:    issue.DeadCode,
			Message: "Unreachable code detected after control flow terminator",
			Path:    testlib.TestFilename,
			Line:    3,
		},
		{
			Kind:    issue.DeadCode,
			Message: "Unreachable code detected after control flow terminator",
			Path:    testlib.TestFilename,
			Line:    4,
		},
	}}

	actual, err := testlib.ToTestResult(Analyze(tree, testlib.MakeTestOption()))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("unexpected result. got: %v. expected: %v.", actual, expected)
	}
}

func TestAnalyzeBreakAndContinue(t *testing.T) {
	for _, testCase := range [...]struct {
		name       string
		terminator ast.NodeKind
	}{
		{"break", ast.KindBreakStmt},
		{"continue", ast.KindContinueStmt},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			tree := testlib.Tree("while (1) {\n    break;\n    g();\n}\n",
				testlib.NodeAt(ast.KindCompoundStmt, "", 1,
					testlib.NodeAt(testCase.terminator, "", 2),
					testlib.NodeAt(ast.KindCallExpr, "g", 3)))
			actual, err := Analyze(tree, testlib.MakeTestOption())
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if actual.Len() != 1 {
				t.Errorf("expected one issue, got %d", actual.Len())
			}
		})
	}
}

func TestAnalyzeNestedCompoundGetsFreshFlag(t *testing.T) {
	// The terminator inside the inner block must not mark statements in the
	// outer block after it.
	inner := testlib.NodeAt(ast.KindCompoundStmt, "", 2,
		testlib.NodeAt(ast.KindReturnStmt, "", 3))
	tree := testlib.Tree("void f() {\n    { \n    return;\n    }\n    g();\n}\n",
		testlib.NodeAt(ast.KindCompoundStmt, "", 1,
			inner,
			testlib.NodeAt(ast.KindCallExpr, "g", 5)))

	actual, err := Analyze(tree, testlib.MakeTestOption())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if actual.Len() != 0 {
		t.Errorf("expected no issues, got %v", actual.Issues)
	}
}

func TestAnalyzeNoTerminator(t *testing.T) {
	tree := testlib.Tree("void f() {\n    g();\n    h();\n}\n",
		testlib.NodeAt(ast.KindCompoundStmt, "", 1,
			testlib.NodeAt(ast.KindCallExpr, "g", 2),
			testlib.NodeAt(ast.KindCallExpr, "h", 3)))
	actual, err := Analyze(tree, testlib.MakeTestOption())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if actual.Len() != 0 {
		t.Errorf("expected no issues, got %v", actual.Issues)
	}
}
