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

// Package atomic writes result and run-metadata files via a temporary file
// and rename, so readers polling the results directory never observe a
// half-written file.
package atomic

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write replaces the file at name with data. The temporary file lives in the
// target directory, so the final rename stays on one filesystem.
func Write(name string, data []byte) error {
	pattern := "tmp-*-" + filepath.Base(name)
	f, err := os.CreateTemp(filepath.Dir(name), pattern)
	if err != nil {
		return fmt.Errorf("atomic.Write: %v", err)
	}
	defer os.Remove(f.Name())
	// CreateTemp uses 0600; published files must be world-readable.
	if err := os.Chmod(f.Name(), 0644); err != nil {
		return fmt.Errorf("atomic.Write: %v", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("atomic.Write: write %s: %v", f.Name(), err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("atomic.Write: sync %s: %v", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("atomic.Write: close %s: %v", f.Name(), err)
	}
	if err := os.Rename(f.Name(), name); err != nil {
		return fmt.Errorf("atomic.Write: rename %s to %s: %v", f.Name(), name, err)
	}
	return nil
}
