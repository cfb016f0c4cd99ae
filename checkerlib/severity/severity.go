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

// Package severity maps severity names from the config, applies per-checker
// overrides, and counts findings per severity for the report summary.
package severity

import (
	"strings"

	"github.com/golang/glog"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

var byName = map[string]issue.Severity{
	"error":        issue.Error,
	"warning":      issue.Warning,
	"info":         issue.Info,
	"optimization": issue.Optimization,
}

// rank orders severities from most to least severe for threshold filtering.
var rank = map[issue.Severity]int{
	issue.Error:        0,
	issue.Warning:      1,
	issue.Info:         2,
	issue.Optimization: 3,
}

func Parse(name string) (issue.Severity, bool) {
	s, ok := byName[strings.ToLower(name)]
	return s, ok
}

// MoreSevere reports whether a is at least as severe as b.
func MoreSevere(a, b issue.Severity) bool {
	return rank[a] <= rank[b]
}

// Apply overrides the severity of every issue produced by the named checker
// when the config carries an override for it. Unknown severity names are
// logged and skipped.
func Apply(list *issue.List, checkerName string, overrides map[string]string) *issue.List {
	if len(overrides) == 0 {
		return list
	}
	name, ok := overrides[checkerName]
	if !ok {
		return list
	}
	s, ok := Parse(name)
	if !ok {
		glog.Warningf("unknown severity %q configured for checker %s", name, checkerName)
		return list
	}
	for _, i := range list.Issues {
		i.Severity = s
	}
	return list
}

type Counts struct {
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Infos         int `json:"infos"`
	Optimizations int `json:"optimizations"`
}

func Count(list *issue.List) Counts {
	var c Counts
	for _, i := range list.Issues {
		switch i.Severity {
		case issue.Error:
			c.Errors++
		case issue.Warning:
			c.Warnings++
		case issue.Info:
			c.Infos++
		case issue.Optimization:
			c.Optimizations++
		}
	}
	return c
}
