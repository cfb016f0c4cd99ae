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

package options

import (
	"fmt"
	"strings"
)

const defaultContextLines = 2

// ArrayFlags collects a repeatable string flag.
type ArrayFlags []string

func (a *ArrayFlags) String() string {
	return strings.Join(*a, ",")
}

func (a *ArrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

// EnvOptions carries the per-invocation environment shared by every checker.
type EnvOptions struct {
	ResultsDir        string
	LogDir            string
	IgnoreDirPatterns ArrayFlags
	CheckProgress     bool
	NumWorkers        int32
	Lang              string
	MinSeverity       string
}

// CheckOptions is the bundle handed to every checker.
type CheckOptions struct {
	EnvOption EnvOptions
	Config    Config
}

// NewCheckOptions returns options with the built-in config defaults applied.
func NewCheckOptions() *CheckOptions {
	return &CheckOptions{
		EnvOption: EnvOptions{Lang: "en"},
		Config:    defaultConfig(),
	}
}

// ContextLines is the snippet window used by the checkers. Zero or negative
// config values fall back to the default.
func (o *CheckOptions) ContextLines() int {
	if o == nil || o.Config.ContextLines <= 0 {
		return defaultContextLines
	}
	return o.Config.ContextLines
}

// CheckerEnabled reports whether a checker is enabled. An empty
// enabled_checkers list means all checkers run.
func (o *CheckOptions) CheckerEnabled(name string) bool {
	if o == nil || len(o.Config.EnabledCheckers) == 0 {
		return true
	}
	for _, enabled := range o.Config.EnabledCheckers {
		if enabled == name {
			return true
		}
	}
	return false
}

func (o *CheckOptions) Validate() error {
	if o.EnvOption.NumWorkers < 0 {
		return fmt.Errorf("num_workers must not be negative, got %d", o.EnvOption.NumWorkers)
	}
	return nil
}
