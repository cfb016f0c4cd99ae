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

package memory

import (
	"reflect"
	"testing"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/ast"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/testlib"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

func TestAnalyze(t *testing.T) {
	source := "void f() {\n    int* p = new int(42);\n}\n"
	tree := testlib.Tree(source,
		testlib.NodeAt(ast.KindFunctionDecl, "f", 1,
			testlib.NodeAt(ast.KindCompoundStmt, "", 1,
				testlib.NodeAt(ast.KindDeclStmt, "", 2,
					testlib.NodeAt(ast.KindVarDecl, "p", 2,
						testlib.NodeAt(ast.KindNewExpr, "", 2))))))

	expected := &issue.List{Issues: []*issue.Issue{
		{
			Kind:    issue.MemoryLeak,
			Message: "Potential memory leak: 'new' used without matching 'delete'",
			Path:    testlib.TestFilename,
			Line:    2,
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

func TestAnalyzeNoAllocation(t *testing.T) {
	tree := testlib.Tree("int x = 0;\n",
		testlib.NodeAt(ast.KindVarDecl, "x", 1,
			testlib.NodeAt(ast.KindIntegerLiteral, "0", 1)))

	actual, err := Analyze(tree, testlib.MakeTestOption())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if actual.Len() != 0 {
		t.Errorf("expected no issues, got %v", actual.Issues)
	}
}

func TestAnalyzeSnippetContext(t *testing.T) {
	source := "void f() {\n    int* p = new int(42);\n}\n"
	tree := testlib.Tree(source,
		testlib.NodeAt(ast.KindNewExpr, "", 2))

	actual, err := Analyze(tree, testlib.MakeTestOption())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if actual.Len() != 1 {
		t.Fatalf("expected one issue, got %d", actual.Len())
	}
	expectedSnippet := "1: void f() {\n2:     int* p = new int(42);\n3: }\n"
	if actual.Issues[0].CodeSnippet != expectedSnippet {
		t.Errorf("got snippet %q, expected %q", actual.Issues[0].CodeSnippet, expectedSnippet)
	}
}
