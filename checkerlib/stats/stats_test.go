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

package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

func TestWriteProgress(t *testing.T) {
	dir := t.TempDir()
	runID := NewRunID()
	startedAt := time.Now()

	WriteProgress(dir, runID, AC, "50%", startedAt)

	data, err := os.ReadFile(filepath.Join(dir, "progress.review_metadata"))
	if err != nil {
		t.Fatalf("progress file not written: %v", err)
	}
	var progress Progress
	if err := json.Unmarshal(data, &progress); err != nil {
		t.Fatalf("progress file is not valid JSON: %v", err)
	}
	if progress.RunID != runID || progress.StageID != AC || progress.DoneRatio != "50%" {
		t.Errorf("unexpected progress: %+v", progress)
	}
}

func TestWriteLOC(t *testing.T) {
	dir := t.TempDir()
	WriteLOC(dir, 1234)
	data, err := os.ReadFile(filepath.Join(dir, "loc.review_metadata"))
	if err != nil {
		t.Fatalf("loc file not written: %v", err)
	}
	if string(data) != "1234" {
		t.Errorf("loc = %q", data)
	}
}

func TestCountLOC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cpp")
	source := "// comment\nint main() {\n    return 0;\n}\n"
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}

	loc, err := CountLOC([]string{path})
	if err != nil {
		t.Fatalf("CountLOC: %v", err)
	}
	// Three code lines; the comment does not count.
	if loc != 3 {
		t.Errorf("loc = %d, expected 3", loc)
	}
}

func TestWriteSeverityCounts(t *testing.T) {
	dir := t.TempDir()
	list := &issue.List{Issues: []*issue.Issue{
		{Severity: issue.Warning},
		{Severity: issue.Warning},
		{Severity: issue.Info},
	}}
	WriteSeverityCounts(dir, list)

	data, err := os.ReadFile(filepath.Join(dir, "severities.review_metadata"))
	if err != nil {
		t.Fatalf("severities file not written: %v", err)
	}
	var decoded map[string]int
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["warnings"] != 2 || decoded["infos"] != 1 {
		t.Errorf("unexpected counts: %v", decoded)
	}
}
