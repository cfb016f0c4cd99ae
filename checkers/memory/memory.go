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

// Package memory flags dynamic allocation expressions as potential leaks.
// The check is purely syntactic: it does not track whether a matching delete
// exists on any path.
package memory

import (
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

func check(node *ast.Node, tree *ast.Tree, opts *options.CheckOptions, results *issue.List) {
	if node.Kind == ast.KindNewExpr {
		results.Add(&issue.Issue{
			Kind:        issue.MemoryLeak,
			Severity:    issue.Warning,
			Message:     "Potential memory leak: 'new' used without matching 'delete'",
			Path:        node.Location.Filename,
			Line:        node.Location.Line,
			Column:      node.Location.Column,
			CodeSnippet: snippet.Around(node.Location.Line, tree.SourceCode, opts.ContextLines()),
			Suggestion:  "Consider using smart pointers like std::unique_ptr or std::shared_ptr",
		})
	}
	for _, child := range node.Children {
		check(child, tree, opts, results)
	}
}
