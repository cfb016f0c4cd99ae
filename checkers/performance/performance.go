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

// Package performance flags parameters of known large container types passed
// by value. The type test is textual: the signature must name a large type
// and must not carry a reference marker.
package performance

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/ast"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/options"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/snippet"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

var largeTypes = []string{
	"std::vector", "std::map", "std::unordered_map", "std::set", "std::string",
}

func Analyze(tree *ast.Tree, opts *options.CheckOptions) (*issue.List, error) {
	results := &issue.List{}
	types := largeTypes
	if opts != nil {
		types = append(slices.Clone(largeTypes), opts.Config.LargeTypes...)
	}
	check(tree.Root, tree, opts, types, results)
	return results, nil
}

func namesLargeType(signature string, types []string) bool {
	for _, t := range types {
		if strings.Contains(signature, t) {
			return true
		}
	}
	return false
}

func check(node *ast.Node, tree *ast.Tree, opts *options.CheckOptions, types []string, results *issue.List) {
	if node.Kind == ast.KindParmDecl &&
		namesLargeType(node.TypeSignature, types) &&
		!strings.Contains(node.TypeSignature, "&") {
		results.Add(&issue.Issue{
			Kind:        issue.PerformanceIssue,
			Severity:    issue.Optimization,
			Message:     fmt.Sprintf("Large object '%s' passed by value", node.Spelling),
			Path:        node.Location.Filename,
			Line:        node.Location.Line,
			Column:      node.Location.Column,
			CodeSnippet: snippet.Around(node.Location.Line, tree.SourceCode, opts.ContextLines()),
			Suggestion:  "Consider passing by const reference for large objects",
		})
	}
	for _, child := range node.Children {
		check(child, tree, opts, types, results)
	}
}
