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

// Package testlib provides helpers for building syntax trees and check
// options in checker tests.
package testlib

import (
	"github.com/Ah2022/AI-Powered-Code-Reviewer/ast"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/options"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

const TestFilename = "test.cpp"

// Node builds a tree node without location information.
func Node(kind ast.NodeKind, spelling string, children ...*ast.Node) *ast.Node {
	return &ast.Node{
		Kind:     kind,
		Spelling: spelling,
		Children: children,
	}
}

// NodeAt builds a tree node located at the given line of TestFilename.
func NodeAt(kind ast.NodeKind, spelling string, line int, children ...*ast.Node) *ast.Node {
	n := Node(kind, spelling, children...)
	n.Location = ast.Location{Filename: TestFilename, Line: line, Column: 1}
	return n
}

// Typed sets the type signature on a node and returns it.
func Typed(n *ast.Node, typeSignature string) *ast.Node {
	n.TypeSignature = typeSignature
	return n
}

// Tree wraps a root node and source text into a syntax tree with a
// translation unit at the top.
func Tree(source string, children ...*ast.Node) *ast.Tree {
	return &ast.Tree{
		Root: &ast.Node{
			Kind:     ast.KindTranslationUnit,
			Children: children,
		},
		SourceCode: source,
		Filename:   TestFilename,
	}
}

// MakeTestOption returns check options with test defaults.
func MakeTestOption() *options.CheckOptions {
	return options.NewCheckOptions()
}

// ToTestResult strips fields that individual checker tests do not
// assert on, so expected issues stay compact.
func ToTestResult(list *issue.List, err error) (*issue.List, error) {
	if err == nil && list != nil {
		for _, iss := range list.Issues {
			iss.Severity = ""
			iss.CodeSnippet = ""
			iss.Suggestion = ""
			iss.Explanation = ""
			iss.Column = 0
		}
	}
	return list, err
}
