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

package severity

import (
	"reflect"
	"testing"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

func TestParse(t *testing.T) {
	for _, testCase := range [...]struct {
		name     string
		input    string
		expected issue.Severity
		ok       bool
	}{
		{"lowercase", "error", issue.Error, true},
		{"uppercase", "WARNING", issue.Warning, true},
		{"mixed case", "Optimization", issue.Optimization, true},
		{"unknown", "critical", "", false},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			actual, ok := Parse(testCase.input)
			if ok != testCase.ok || actual != testCase.expected {
				t.Errorf("Parse(%q) = %v, %v. expected: %v, %v.",
					testCase.input, actual, ok, testCase.expected, testCase.ok)
			}
		})
	}
}

func TestMoreSevere(t *testing.T) {
	if !MoreSevere(issue.Error, issue.Warning) {
		t.Error("ERROR must outrank WARNING")
	}
	if !MoreSevere(issue.Warning, issue.Warning) {
		t.Error("a severity is at least as severe as itself")
	}
	if MoreSevere(issue.Optimization, issue.Info) {
		t.Error("OPTIMIZATION must not outrank INFO")
	}
}

func TestApply(t *testing.T) {
	list := &issue.List{Issues: []*issue.Issue{
		{Kind: issue.MemoryLeak, Severity: issue.Warning},
		{Kind: issue.MemoryLeak, Severity: issue.Warning},
	}}
	Apply(list, "memory", map[string]string{"memory": "error"})
	for _, iss := range list.Issues {
		if iss.Severity != issue.Error {
			t.Errorf("severity = %s, expected ERROR", iss.Severity)
		}
	}
}

func TestApplyNoOverride(t *testing.T) {
	list := &issue.List{Issues: []*issue.Issue{
		{Kind: issue.DeadCode, Severity: issue.Warning},
	}}
	Apply(list, "deadcode", map[string]string{"memory": "error"})
	if list.Issues[0].Severity != issue.Warning {
		t.Errorf("severity changed to %s", list.Issues[0].Severity)
	}
}

func TestApplyUnknownName(t *testing.T) {
	list := &issue.List{Issues: []*issue.Issue{
		{Kind: issue.DeadCode, Severity: issue.Warning},
	}}
	Apply(list, "deadcode", map[string]string{"deadcode": "fatal"})
	if list.Issues[0].Severity != issue.Warning {
		t.Errorf("severity changed to %s on unknown override", list.Issues[0].Severity)
	}
}

func TestCount(t *testing.T) {
	list := &issue.List{Issues: []*issue.Issue{
		{Severity: issue.Error},
		{Severity: issue.Warning},
		{Severity: issue.Warning},
		{Severity: issue.Info},
		{Severity: issue.Optimization},
	}}
	expected := Counts{Errors: 1, Warnings: 2, Infos: 1, Optimizations: 1}
	if actual := Count(list); !reflect.DeepEqual(actual, expected) {
		t.Errorf("Count = %+v, expected %+v", actual, expected)
	}
}
