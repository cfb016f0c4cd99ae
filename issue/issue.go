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

// Package issue defines the finding record produced by the checkers and the
// shared kind/severity vocabulary. Issues are created by checkers during a
// single analysis run and are not mutated by the core afterwards; the
// enhancement stage may fill Explanation and replace Suggestion downstream.
package issue

// Kind is the issue family of a finding.
type Kind string

const (
	MemoryLeak         Kind = "Memory Leak"
	NullDereference    Kind = "Null Pointer Dereference"
	UninitializedVar   Kind = "Uninitialized Variable"
	ResourceLeak       Kind = "Resource Leak"
	UseAfterFree       Kind = "Use After Free"
	BufferOverflow     Kind = "Buffer Overflow"
	IntegerOverflow    Kind = "Integer Overflow"
	DivisionByZero     Kind = "Division By Zero"
	DeadCode           Kind = "Dead Code"
	RedundantCode      Kind = "Redundant Code"
	StyleViolation     Kind = "Style Violation"
	PerformanceIssue   Kind = "Performance Issue"
	ConcurrencyIssue   Kind = "Concurrency Issue"
	APIMisuse          Kind = "API Misuse"
	Other              Kind = "Other Issue"
)

// Severity of a finding.
type Severity string

const (
	Error        Severity = "ERROR"
	Warning      Severity = "WARNING"
	Info         Severity = "INFO"
	Optimization Severity = "OPTIMIZATION"
)

// Issue is one finding. The JSON shape is the contract with the enhancement
// service and the machine-readable output.
type Issue struct {
	Kind        Kind     `json:"type"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Path        string   `json:"path"`
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	CodeSnippet string   `json:"code_snippet"`
	Suggestion  string   `json:"recommendation"`
	Explanation string   `json:"explanation,omitempty"`
}

// List is an ordered sequence of issues. Checkers return their own List; the
// pipeline driver concatenates them in fixed checker order.
type List struct {
	Issues []*Issue
}

func (l *List) Add(i *Issue) {
	l.Issues = append(l.Issues, i)
}

func (l *List) AddList(other *List) {
	l.Issues = append(l.Issues, other.Issues...)
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Issues)
}
