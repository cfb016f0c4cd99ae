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

// Package style flags C-style casts, 'using namespace std', and virtual
// methods whose declaration text lacks the override specifier.
package style

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

func check(node *ast.Node, tree *ast.Tree, opts *options.CheckOptions, results *issue.List) {
	switch {
	case node.Kind == ast.KindCStyleCastExpr:
		results.Add(styleIssue(node, tree, opts,
			"C-style cast detected",
			"Use C++ style casts (static_cast, dynamic_cast, etc.)"))

	case node.Kind == ast.KindUsingDirective && node.Spelling == "std":
		results.Add(styleIssue(node, tree, opts,
			"Using directive brings all names from namespace 'std' into global namespace",
			"Prefer selective using declarations or namespace qualifiers"))

	case node.Kind == ast.KindMethodDecl && node.IsVirtual && node.Spelling != "":
		// The override test works on the rendered declaration text. Base
		// classes are not resolved, so a root virtual method is reported too.
		excerpt := snippet.Around(node.Location.Line, tree.SourceCode, opts.ContextLines())
		if !strings.Contains(excerpt, "override") {
			i := styleIssue(node, tree, opts,
				fmt.Sprintf("Virtual method '%s' might be missing 'override' specifier", node.Spelling),
				"Add 'override' specifier to methods that override virtual functions")
			i.CodeSnippet = excerpt
			results.Add(i)
		}
	}
	for _, child := range node.Children {
		check(child, tree, opts, results)
	}
}

func styleIssue(node *ast.Node, tree *ast.Tree, opts *options.CheckOptions, message, suggestion string) *issue.Issue {
	return &issue.Issue{
		Kind:        issue.StyleViolation,
		Severity:    issue.Info,
		Message:     message,
		Path:        node.Location.Filename,
		Line:        node.Location.Line,
		Column:      node.Location.Column,
		CodeSnippet: snippet.Around(node.Location.Line, tree.SourceCode, opts.ContextLines()),
		Suggestion:  suggestion,
	}
}
