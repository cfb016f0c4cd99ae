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

// Package resourceleak flags calls to resource-acquisition functions. The
// acquisition set is a lookup table extended by the resource_functions
// config list, not a hard-coded branch per function.
package resourceleak

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/ast"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/options"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/snippet"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

var resourceFunctions = []string{
	"fopen", "open", "CreateFile", "socket", "malloc", "SDL_CreateWindow",
}

func Analyze(tree *ast.Tree, opts *options.CheckOptions) (*issue.List, error) {
	results := &issue.List{}
	acquirers := resourceFunctions
	if opts != nil {
		acquirers = append(slices.Clone(resourceFunctions), opts.Config.ResourceFunctions...)
	}
	check(tree.Root, tree, opts, acquirers, results)
	return results, nil
}

func check(node *ast.Node, tree *ast.Tree, opts *options.CheckOptions, acquirers []string, results *issue.List) {
	if node.Kind == ast.KindCallExpr && slices.Contains(acquirers, node.Spelling) {
		results.Add(&issue.Issue{
			Kind:        issue.ResourceLeak,
			Severity:    issue.Warning,
			Message:     fmt.Sprintf("Potential resource leak: '%s' call without corresponding release", node.Spelling),
			Path:        node.Location.Filename,
			Line:        node.Location.Line,
			Column:      node.Location.Column,
			CodeSnippet: snippet.Around(node.Location.Line, tree.SourceCode, opts.ContextLines()),
			Suggestion:  "Use RAII pattern with appropriate smart handles for resources",
		})
	}
	for _, child := range node.Children {
		check(child, tree, opts, acquirers, results)
	}
}
