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

// Package deadcode flags statements that follow a return, break or continue
// within the same compound statement. Only the direct children of a compound
// statement are considered for the terminator: a terminator nested one level
// down (for example inside a braceless if) does not set the flag. This is a
// known limitation kept for compatibility with the established behavior.
package deadcode

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

// flaggable are the statement-like kinds reported once the terminator flag is
// set. Other kinds after a terminator (for example a nested if) pass silently.
func flaggable(k ast.NodeKind) bool {
	switch k {
	case ast.KindDeclStmt, ast.KindBinaryOperator, ast.KindCallExpr:
		return true
	}
	return false
}

func check(node *ast.Node, tree *ast.Tree, opts *options.CheckOptions, results *issue.List) {
	if node.Kind == ast.KindCompoundStmt {
		// The flag does not reset within one compound statement; every
		// flaggable child after the first terminator is reported
		// individually. Nested compound statements get a fresh flag through
		// the recursive call below.
		foundTerminator := false
		for _, child := range node.Children {
			if foundTerminator && flaggable(child.Kind) {
				results.Add(&issue.Issue{
					Kind:        issue.DeadCode,
					Severity:    issue.Warning,
					Message:     "Unreachable code detected after control flow terminator",
					Path:        child.Location.Filename,
					Line:        child.Location.Line,
					Column:      child.Location.Column,
					CodeSnippet: snippet.Around(child.Location.Line, tree.SourceCode, opts.ContextLines()),
					Suggestion:  "Remove or fix unreachable code",
				})
			}
			if child.Kind.IsTerminator() {
				foundTerminator = true
			}
		}
	}
	for _, child := range node.Children {
		check(child, tree, opts, results)
	}
}
