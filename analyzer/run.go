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

// Package analyzer drives the checkers over one tree and concatenates their
// findings. The checker order is a contract: downstream numbering and
// snapshot tests depend on it being deterministic and repeatable for
// identical input.
package analyzer

import (
	"errors"

	"github.com/golang/glog"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/ast"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/options"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/runner"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/severity"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkers/bufferoverflow"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkers/deadcode"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkers/memory"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkers/nullderef"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkers/performance"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkers/resourceleak"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkers/style"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkers/uninitvar"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

// ErrInvalidTree is returned when the parser frontend produced no usable
// root. No partial results accompany it.
var ErrInvalidTree = errors.New("invalid syntax tree: missing root node")

// Checker is one entry of the fixed pipeline table.
type Checker struct {
	Name    string
	Analyze func(tree *ast.Tree, opts *options.CheckOptions) (*issue.List, error)
}

// Checkers is the pipeline in its fixed, stable order. New checkers are
// appended here; nothing else in the dispatch changes.
var Checkers = []Checker{
	{"memory", memory.Analyze},
	{"uninitvar", uninitvar.Analyze},
	{"resourceleak", resourceleak.Analyze},
	{"nullderef", nullderef.Analyze},
	{"bufferoverflow", bufferoverflow.Analyze},
	{"deadcode", deadcode.Analyze},
	{"performance", performance.Analyze},
	{"style", style.Analyze},
}

// Analyze runs every enabled checker over tree and returns the concatenated
// findings in checker order. With NumWorkers > 1 the checkers run in
// parallel; the output ordering is identical either way. A checker error
// never aborts the pipeline: the failing checker contributes no issues.
func Analyze(tree *ast.Tree, opts *options.CheckOptions) (*issue.List, error) {
	if tree == nil || tree.Root == nil {
		return nil, ErrInvalidTree
	}
	if opts == nil {
		opts = options.NewCheckOptions()
	}

	enabled := make([]Checker, 0, len(Checkers))
	for _, c := range Checkers {
		if opts.CheckerEnabled(c.Name) {
			enabled = append(enabled, c)
		}
	}

	if opts.EnvOption.NumWorkers > 1 {
		return analyzeParallel(tree, opts, enabled), nil
	}

	combined := &issue.List{}
	for _, c := range enabled {
		list, err := c.Analyze(tree, opts)
		if err != nil {
			glog.Errorf("checker %s: %v", c.Name, err)
			continue
		}
		severity.Apply(list, c.Name, opts.Config.SeverityOverrides)
		combined.AddList(list)
	}
	return combined, nil
}

func analyzeParallel(tree *ast.Tree, opts *options.CheckOptions, enabled []Checker) *issue.List {
	paraTaskRunner := runner.NewParaTaskRunner(
		opts.EnvOption.NumWorkers, len(enabled), opts.EnvOption.CheckProgress, opts.EnvOption.Lang)
	for i, c := range enabled {
		paraTaskRunner.AddTask(runner.AnalyzerTask{
			Id: i, Tree: tree, Opts: opts, Checker: c.Name, Analyze: c.Analyze})
	}
	results, _ := paraTaskRunner.CollectResultsAndErrors()
	return results
}
