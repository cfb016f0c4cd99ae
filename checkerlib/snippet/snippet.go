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

// Package snippet extracts numbered source excerpts around an issue location.
// Malformed positions are recovered by clipping to the file bounds, never by
// returning an error.
package snippet

import (
	"fmt"
	"strings"
)

// Line is one extracted source line with its 1-based line number.
type Line struct {
	Number int
	Text   string
}

// Extract returns every source line in [line-contextLines, line+contextLines]
// clipped to the bounds of source. A line beyond the end of the file yields an
// empty result.
func Extract(line int, source string, contextLines int) []Line {
	lines := strings.Split(source, "\n")
	// A trailing newline does not start another source line.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	startLine := line - contextLines
	if startLine < 1 {
		startLine = 1
	}
	endLine := line + contextLines
	if endLine > len(lines) {
		endLine = len(lines)
	}
	extracted := []Line{}
	for i := startLine; i <= endLine; i++ {
		extracted = append(extracted, Line{Number: i, Text: lines[i-1]})
	}
	return extracted
}

// Render formats extracted lines in the "N: text" form used by the report and
// the enhancement service contract.
func Render(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&sb, "%d: %s\n", l.Number, l.Text)
	}
	return sb.String()
}

// Around is the extract-and-render shorthand the checkers use.
func Around(line int, source string, contextLines int) string {
	return Render(Extract(line, source, contextLines))
}
