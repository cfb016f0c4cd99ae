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

// Package uninitvar flags variable declarations without an initializer.
// A declaration counts as initialized when one of its children is a literal
// or a call expression. Pointer-typed declarations are exempt.
package uninitvar

import (
	"fmt"
	"strings"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/ast"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/options"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/snippet"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

func Analyze(tree *ast.Tree, opts *options.CheckOptions) (*issue.List, error) {
	results := &issue.List{}
	check(tree.Root, tree, opts, results)
	return results, nil
}

func hasInitializer(node *ast.Node) bool {
	for _, child := range node.Children {
		if child.Kind.IsLiteral() || child.Kind == ast.KindCallExpr {
			return true
		}
	}
	return false
}

func check(node *ast.Node, tree *ast.Tree, opts *options.CheckOptions, results *issue.List) {
	if node.Kind == ast.KindVarDecl && !hasInitializer(node) &&
		!strings.Contains(node.TypeSignature, "*") {
		results.Add(&issue.Issue{
			Kind:        issue.UninitializedVar,
			Severity:    issue.Warning,
			Message:     fmt.Sprintf("Variable '%s' may be used uninitialized", node.Spelling),
			Path:        node.Location.Filename,
			Line:        node.Location.Line,
			Column:      node.Location.Column,
			CodeSnippet: snippet.Around(node.Location.Line, tree.SourceCode, opts.ContextLines()),
			Suggestion:  "Initialize all variables when declared",
		})
	}
	for _, child := range node.Children {
		check(child, tree, opts, results)
	}
}
