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

// Package runner executes checker tasks on a goroutine workgroup. Partial
// result lists are kept per task id and concatenated in task order, so a
// parallel run emits exactly the same issue sequence as a sequential one.
package runner

import (
	"errors"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/text/message"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/ast"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/basic"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/i18n"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/options"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/severity"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

// The task for Runner to run in parallels
type AnalyzerTask struct {
	Id      int
	Tree    *ast.Tree
	Opts    *options.CheckOptions
	Analyze func(tree *ast.Tree, opts *options.CheckOptions) (*issue.List, error)
	Checker string
}

type analyzerResult struct {
	id      int
	checker string
	list    *issue.List
	err     error
}

// A goroutine workgroup to run checkers in parallel.
type ParaTaskRunner struct {
	showProgress   bool
	workerWg       sync.WaitGroup
	collectorWg    sync.WaitGroup
	jobs_chan      chan AnalyzerTask
	results_chan   chan analyzerResult
	results        []*issue.List
	errors         []error
	processPrinter basic.CheckingProcessPrinter
}

func (pt *ParaTaskRunner) worker(jobs <-chan AnalyzerTask, results chan<- analyzerResult, printer *message.Printer) {
	for j := range jobs {
		if pt.showProgress {
			pt.processPrinter.StartAnalyzeTask(j.Checker, printer)
		}
		func() {
			defer func() {
				// recover from possible panic
				if r := recover(); r != nil {
					glog.Error("Recovered in analyze: ", r, string(debug.Stack()))
					results <- analyzerResult{id: j.Id, err: errors.New("panic in checker"), list: nil, checker: j.Checker}
					if pt.showProgress {
						pt.processPrinter.FinishAnalyzeTask(j.Checker, printer)
					}
				}
			}()
			list, err := j.Analyze(j.Tree, j.Opts)
			if list != nil && j.Opts != nil {
				severity.Apply(list, j.Checker, j.Opts.Config.SeverityOverrides)
			}
			results <- analyzerResult{id: j.Id, err: err, list: list, checker: j.Checker}
			if pt.showProgress {
				pt.processPrinter.FinishAnalyzeTask(j.Checker, printer)
			}
		}()
	}
	pt.workerWg.Done()
}

// Create a new task runner and results collector.
func NewParaTaskRunner(numWorkers int32, taskNums int, showProgress bool, lang string) *ParaTaskRunner {
	printer := i18n.GetPrinter(lang)
	if numWorkers == 0 {
		numWorkers = int32(runtime.NumCPU())
		if showProgress {
			basic.PrintfWithTimeStamp(printer.Sprintf("Use %d CPU(s)", numWorkers))
		}
	}
	paraRunner := &ParaTaskRunner{
		showProgress:   showProgress,
		jobs_chan:      make(chan AnalyzerTask, numWorkers),
		results_chan:   make(chan analyzerResult, numWorkers),
		results:        make([]*issue.List, taskNums),
		errors:         make([]error, taskNums),
		processPrinter: basic.NewCheckingProcessPrinter(taskNums),
	}
	for w := 0; w < int(numWorkers); w++ {
		paraRunner.workerWg.Add(1)
		go paraRunner.worker(paraRunner.jobs_chan, paraRunner.results_chan, printer)
	}

	// Collect partial lists by task id. Arrival order does not matter; the
	// final concatenation below restores the fixed checker order.
	paraRunner.collectorWg.Add(1)
	go func() {
		for jobResult := range paraRunner.results_chan {
			if jobResult.err != nil {
				glog.Errorf("Analyze %v got error %v", jobResult.checker, jobResult.err)
			}
			paraRunner.results[jobResult.id] = jobResult.list
			paraRunner.errors[jobResult.id] = jobResult.err
		}
		paraRunner.collectorWg.Done()
	}()
	return paraRunner
}

// Add a task to the task runner and start running the task.
func (pt *ParaTaskRunner) AddTask(task AnalyzerTask) {
	pt.jobs_chan <- task
}

// Wait until all workers and the collector are finished, then concatenate the
// partial lists in task order. Return the combined list and the per-task
// errors.
func (pt *ParaTaskRunner) CollectResultsAndErrors() (results *issue.List, errs []error) {
	go func() {
		pt.workerWg.Wait()
		close(pt.results_chan)
	}()
	close(pt.jobs_chan)
	pt.collectorWg.Wait()
	combined := &issue.List{}
	for _, list := range pt.results {
		if list != nil {
			combined.AddList(list)
		}
	}
	return combined, pt.errors
}
