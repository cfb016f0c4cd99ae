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

/*
This package should not import any packages of the checkers to avoid
recursive import.
*/
package filter

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/severity"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

var kSupportedSuffixs = []string{"c", "cpp", "cc", "cxx", "c++"}

// IsCCFile reports whether path names a reviewable C or C++ implementation
// file.
func IsCCFile(path string) bool {
	for _, suffix := range kSupportedSuffixs {
		if strings.HasSuffix(path, "."+suffix) {
			return true
		}
	}
	return false
}

// MatchesIgnorePatterns reports whether path matches any of the doublestar
// ignore patterns. Malformed patterns are logged and skipped.
func MatchesIgnorePatterns(path string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			glog.Warningf("doublestar.Match(%s): %v", pattern, err)
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// DeleteIssuesByIgnorePatterns removes issues whose path matches an ignore
// pattern.
func DeleteIssuesByIgnorePatterns(list *issue.List, patterns []string) *issue.List {
	if len(patterns) == 0 {
		return list
	}
	filtered := &issue.List{}
	for _, i := range list.Issues {
		if !MatchesIgnorePatterns(i.Path, patterns) {
			filtered.Add(i)
		}
	}
	return filtered
}

// DeleteIssuesBelowSeverity removes issues less severe than the named
// threshold. An empty or unknown threshold keeps everything.
func DeleteIssuesBelowSeverity(list *issue.List, minSeverity string) *issue.List {
	if minSeverity == "" {
		return list
	}
	threshold, ok := severity.Parse(minSeverity)
	if !ok {
		glog.Warningf("unknown minimum severity %q, keeping all issues", minSeverity)
		return list
	}
	filtered := &issue.List{}
	for _, i := range list.Issues {
		if severity.MoreSevere(i.Severity, threshold) {
			filtered.Add(i)
		}
	}
	return filtered
}
