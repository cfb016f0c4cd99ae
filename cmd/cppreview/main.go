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

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/analyzer"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/atomic"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/baseline"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/basic"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/filter"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/i18n"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/options"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/stats"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/enhancer"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/parser"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/report"
)

var (
	filePath     = flag.String("f", "", "path of a single C/C++ file to review")
	dirPath      = flag.String("d", "", "path of a directory to review recursively")
	resultsDir   = flag.String("o", "output", "directory for results and run metadata")
	configPath   = flag.String("config", "", "path of the YAML config file")
	numWorkers   = flag.Int("num_workers", 0, "number of parallel checker workers, 0 means sequential")
	lang         = flag.String("lang", "en", "language of progress messages (en or zh)")
	enhance      = flag.Bool("enhance", false, "enrich issues with explanations and fixes")
	baselinePath = flag.String("baseline", "", "path of the baseline database; known issues are suppressed")
	recordBase   = flag.Bool("record_baseline", false, "record surviving issues into the baseline database")
	minSeverity  = flag.String("min_severity", "", "drop issues below this severity (ERROR, WARNING, INFO, OPTIMIZATION)")
	checkProg    = flag.Bool("check_progress", true, "print timestamped progress messages")
	noColor      = flag.Bool("no_color", false, "disable colored terminal output")

	ignoreDirPatterns options.ArrayFlags
)

func main() {
	flag.Var(&ignoreDirPatterns, "ignore_dir", "glob pattern of directories to skip, repeatable")
	flag.Parse()
	defer glog.Flush()

	printer := i18n.GetPrinter(*lang)

	opts, err := buildOptions()
	if err != nil {
		glog.Fatalf("main: %v", err)
	}

	paths, err := collectSourceFiles()
	if err != nil {
		glog.Fatalf("main: %v", err)
	}
	if len(paths) == 0 {
		fmt.Println(printer.Sprintf("No C/C++ source files to review."))
		return
	}

	if err := os.MkdirAll(*resultsDir, 0755); err != nil {
		glog.Fatalf("main: create results dir: %v", err)
	}

	runID := stats.NewRunID()
	start := time.Now()
	if opts.EnvOption.CheckProgress {
		basic.PrintfWithTimeStamp(printer.Sprintf("Start parsing %d source files", len(paths)))
		stats.WriteProgress(*resultsDir, runID, stats.PR, "0%", start)
	}

	if loc, err := stats.CountLOC(paths); err != nil {
		glog.Warningf("stats.CountLOC: %v", err)
	} else {
		stats.WriteLOC(*resultsDir, loc)
	}

	// Plain append: the analyzer's ordering and count are authoritative, so
	// two findings on the same line with the same message both survive.
	allIssues := &issue.List{}
	for i, path := range paths {
		tree, err := parser.ParseFile(opts.Config.ParserCommand, path)
		if err != nil {
			glog.Errorf("parser.ParseFile(%s): %v", path, err)
			continue
		}
		if opts.EnvOption.CheckProgress {
			stats.WriteProgress(*resultsDir, runID, stats.AC, basic.GetPercentString(i, len(paths)), start)
		}
		list, err := analyzer.Analyze(tree, opts)
		if err != nil {
			glog.Errorf("analyzer.Analyze(%s): %v", path, err)
			continue
		}
		allIssues.AddList(list)
	}

	results := allIssues
	results = filter.DeleteIssuesByIgnorePatterns(results, opts.EnvOption.IgnoreDirPatterns)
	results = filter.DeleteIssuesBelowSeverity(results, opts.EnvOption.MinSeverity)

	if *baselinePath != "" {
		results, err = applyBaseline(results)
		if err != nil {
			glog.Errorf("main: baseline: %v", err)
		}
	}

	if *enhance {
		if opts.EnvOption.CheckProgress {
			basic.PrintfWithTimeStamp(printer.Sprintf("Start enhancing %d issues", results.Len()))
			stats.WriteProgress(*resultsDir, runID, stats.EN, "0%", start)
		}
		enhancer.New(opts.Config.Enhancer).Enhance(results)
	} else {
		for _, iss := range results.Issues {
			b := enhancer.Builtin(iss.Kind, iss.Message)
			iss.Explanation = b.Explanation
			if iss.Suggestion == "" {
				iss.Suggestion = b.Recommendation
			}
		}
	}

	stats.WriteSeverityCounts(*resultsDir, results)

	jsonData, err := report.FormatJSON(results)
	if err != nil {
		glog.Errorf("report.FormatJSON: %v", err)
	} else {
		resultsPath := filepath.Join(*resultsDir, "results.review_results.json")
		if err := atomic.Write(resultsPath, jsonData); err != nil {
			glog.Errorf("atomic.Write(%s): %v", resultsPath, err)
		}
	}

	fmt.Print(report.Format(results, printer, !*noColor))

	if opts.EnvOption.CheckProgress {
		stats.WriteProgress(*resultsDir, runID, stats.END, "100%", start)
		timeUsed := basic.FormatTimeDuration(time.Since(start))
		basic.PrintfWithTimeStamp(printer.Sprintf("Total time for review: %s", timeUsed))
	}
}

func buildOptions() (*options.CheckOptions, error) {
	opts := options.NewCheckOptions()
	if *configPath != "" {
		cfg, err := options.LoadConfig(*configPath)
		if err != nil {
			return nil, fmt.Errorf("options.LoadConfig: %v", err)
		}
		opts.Config = cfg
	}
	opts.EnvOption.ResultsDir = *resultsDir
	opts.EnvOption.IgnoreDirPatterns = ignoreDirPatterns
	opts.EnvOption.CheckProgress = *checkProg
	opts.EnvOption.NumWorkers = int32(*numWorkers)
	opts.EnvOption.Lang = *lang
	opts.EnvOption.MinSeverity = *minSeverity
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func collectSourceFiles() ([]string, error) {
	if *filePath == "" && *dirPath == "" {
		return nil, fmt.Errorf("either -f or -d must be given")
	}
	var paths []string
	if *filePath != "" {
		if !filter.IsCCFile(*filePath) {
			return nil, fmt.Errorf("%s is not a C/C++ source file", *filePath)
		}
		paths = append(paths, *filePath)
	}
	if *dirPath != "" {
		err := filepath.WalkDir(*dirPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if filter.MatchesIgnorePatterns(path, ignoreDirPatterns) {
					return filepath.SkipDir
				}
				return nil
			}
			if filter.IsCCFile(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %v", *dirPath, err)
		}
	}
	return paths, nil
}

func applyBaseline(results *issue.List) (*issue.List, error) {
	conn, err := baseline.Open(*baselinePath)
	if err != nil {
		return results, err
	}
	defer conn.Close()

	suppressed, err := baseline.Suppress(conn, results)
	if err != nil {
		return results, err
	}
	if *recordBase {
		if err := baseline.Record(conn, suppressed); err != nil {
			return suppressed, err
		}
	}
	return suppressed, nil
}
