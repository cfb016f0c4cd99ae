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

// Package report renders review results for terminals and for JSON output.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/message"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/severity"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

const divider = "=============================================\n"

var severityColors = map[issue.Severity]*color.Color{
	issue.Error:        color.New(color.FgRed, color.Bold),
	issue.Warning:      color.New(color.FgYellow, color.Bold),
	issue.Info:         color.New(color.FgBlue, color.Bold),
	issue.Optimization: color.New(color.FgGreen, color.Bold),
}

// Format renders the full text report: a summary of issue counts by
// severity followed by one detailed block per issue, in list order.
func Format(list *issue.List, printer *message.Printer, useColor bool) string {
	if list == nil || len(list.Issues) == 0 {
		return printer.Sprintf("No issues found in the code.") + "\n"
	}

	counts := severity.Count(list)

	var sb strings.Builder
	sb.WriteString(divider)
	sb.WriteString("            C++ CODE REVIEW RESULTS            \n")
	sb.WriteString(divider)
	sb.WriteString("\n")

	sb.WriteString(printer.Sprintf("Summary:") + "\n")
	sb.WriteString(printer.Sprintf("  - Errors: %d", counts.Errors) + "\n")
	sb.WriteString(printer.Sprintf("  - Warnings: %d", counts.Warnings) + "\n")
	sb.WriteString(printer.Sprintf("  - Information: %d", counts.Infos) + "\n")
	sb.WriteString(printer.Sprintf("  - Optimization suggestions: %d", counts.Optimizations) + "\n")
	sb.WriteString(printer.Sprintf("  - Total issues: %d", len(list.Issues)) + "\n\n")

	sb.WriteString("DETAILED ISSUES:\n")
	sb.WriteString(divider)
	sb.WriteString("\n")

	for i, iss := range list.Issues {
		sb.WriteString(fmt.Sprintf("[%d] %s: %s\n", i+1, severityLabel(iss.Severity, useColor), iss.Kind))
		sb.WriteString(fmt.Sprintf("Location: %s:%d:%d\n", iss.Path, iss.Line, iss.Column))
		sb.WriteString(printer.Sprintf("Message: %s", iss.Message) + "\n\n")

		sb.WriteString("Code Snippet:\n")
		sb.WriteString("-------------\n")
		sb.WriteString(iss.CodeSnippet)
		if !strings.HasSuffix(iss.CodeSnippet, "\n") {
			sb.WriteString("\n")
		}

		if iss.Explanation != "" {
			sb.WriteString("Explanation:\n")
			sb.WriteString("------------\n")
			sb.WriteString(iss.Explanation + "\n\n")
		}

		sb.WriteString("Recommended Fix:\n")
		sb.WriteString("----------------\n")
		sb.WriteString(iss.Suggestion + "\n")

		sb.WriteString(divider)
		sb.WriteString("\n")
	}

	return sb.String()
}

func severityLabel(s issue.Severity, useColor bool) string {
	if useColor {
		if c, ok := severityColors[s]; ok {
			return c.Sprint(string(s))
		}
	}
	return string(s)
}

// FormatJSON renders the issue list as indented JSON, suitable for
// writing to a results file.
func FormatJSON(list *issue.List) ([]byte, error) {
	if list == nil {
		list = &issue.List{}
	}
	if list.Issues == nil {
		list.Issues = []*issue.Issue{}
	}
	data, err := json.MarshalIndent(list.Issues, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("report.FormatJSON: %v", err)
	}
	return data, nil
}
