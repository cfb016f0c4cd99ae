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
	"os"

	"github.com/golang/glog"
	"gopkg.in/yaml.v2"
)

// Config is the YAML configuration file. Name lists extend the built-in
// lookup tables of the corresponding checkers; they never shrink them.
type Config struct {
	ContextLines      int               `yaml:"context_lines,omitempty"`
	EnabledCheckers   []string          `yaml:"enabled_checkers,omitempty"`
	ResourceFunctions []string          `yaml:"resource_functions,omitempty"`
	UnsafeFunctions   []string          `yaml:"unsafe_functions,omitempty"`
	LargeTypes        []string          `yaml:"large_types,omitempty"`
	SeverityOverrides map[string]string `yaml:"severity_overrides,omitempty"`
	ParserCommand     string            `yaml:"parser_command,omitempty"`
	Enhancer          EnhancerConfig    `yaml:"enhancer,omitempty"`
}

type EnhancerConfig struct {
	Model          string `yaml:"model,omitempty"`
	BaseURL        string `yaml:"base_url,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

func defaultConfig() Config {
	return Config{
		ContextLines:  defaultContextLines,
		ParserCommand: "clang -fsyntax-only -Xclang -ast-dump=json",
		Enhancer: EnhancerConfig{
			Model:          "gpt-4o",
			BaseURL:        "https://api.openai.com/v1",
			TimeoutSeconds: 30,
		},
	}
}

// LoadConfig reads a YAML config file and merges it over the defaults. An
// empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("os.ReadFile: %v", err)
	}
	if err := yaml.Unmarshal(content, &config); err != nil {
		return config, fmt.Errorf("yaml.Unmarshal(%s): %v", path, err)
	}
	if config.ContextLines < 0 {
		glog.Warningf("ignoring negative context_lines %d in %s", config.ContextLines, path)
		config.ContextLines = defaultContextLines
	}
	return config, nil
}
