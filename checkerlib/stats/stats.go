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

// Package stats records run metadata next to the review results: progress,
// lines of code, and per-severity counts. Metadata failures are logged and
// never fail the review.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/hhatto/gocloc"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/atomic"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/severity"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

// analysis stages
const (
	PR  int = iota // Parsing
	AC             // Analysis check
	EN             // Enhancement
	END
)

type Progress struct {
	RunID     string    `json:"run_id"`
	StageID   int       `json:"stage_id"`
	DoneRatio string    `json:"done_ratio"`
	StartedAt time.Time `json:"started_at"`
}

// NewRunID returns the identifier written into every metadata file of one
// review run.
func NewRunID() string {
	return uuid.NewString()
}

func WriteProgress(resultDir, runID string, stageID int, doneRatio string, startedAt time.Time) {
	// skip writing it if resultDir does not exist
	_, err := os.Stat(resultDir)
	if os.IsNotExist(err) {
		glog.Warningf("result dir %s does not exist", resultDir)
		return
	}
	path := filepath.Join(resultDir, "progress.review_metadata")
	progress, err := json.Marshal(Progress{RunID: runID, StageID: stageID, DoneRatio: doneRatio, StartedAt: startedAt})
	if err != nil {
		glog.Errorf("failed to marshal json stageID %d and doneRatio %s: %v", stageID, doneRatio, err)
		return
	}
	if err := atomic.Write(path, progress); err != nil {
		glog.Errorf("failed to write to file %s: %v", path, err)
	}
}

// CountLOC counts the code lines of the reviewed files.
func CountLOC(paths []string) (int, error) {
	clocOpts := gocloc.NewClocOptions()
	languages := gocloc.NewDefinedLanguages()
	for _, lang := range []string{"C", "C++", "C/C++ Header"} {
		if _, exists := languages.Langs[lang]; exists {
			clocOpts.IncludeLangs[lang] = struct{}{}
		}
	}
	processor := gocloc.NewProcessor(languages, clocOpts)
	result, err := processor.Analyze(paths)
	if err != nil {
		return 0, fmt.Errorf("gocloc fail: %v", err)
	}
	sum := 0
	for _, file := range result.Files {
		sum += int(file.Code)
	}
	return sum, nil
}

func WriteLOC(resultDir string, linesCounter int) {
	path := filepath.Join(resultDir, "loc.review_metadata")
	err := atomic.Write(path, []byte(strconv.Itoa(linesCounter)))
	if err != nil {
		glog.Errorf("failed to write to file %s: %v", path, err)
	}
}

func WriteSeverityCounts(resultDir string, list *issue.List) {
	path := filepath.Join(resultDir, "severities.review_metadata")
	counts, err := json.Marshal(severity.Count(list))
	if err != nil {
		glog.Errorf("failed to marshal severity counts: %v", err)
		return
	}
	if err := atomic.Write(path, counts); err != nil {
		glog.Errorf("failed to write to file %s: %v", path, err)
	}
}
