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

// Package baseline stores fingerprints of accepted findings in a SQLite file
// and suppresses them in later runs. Suppression happens after the pipeline
// returns; the analyzer output itself is never touched.
package baseline

import (
	"fmt"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

const schema = `CREATE TABLE IF NOT EXISTS fingerprints (
	path TEXT NOT NULL,
	line INTEGER NOT NULL,
	message TEXT NOT NULL,
	recorded_at TEXT NOT NULL,
	PRIMARY KEY (path, line, message)
)`

// Open opens (creating if needed) a baseline database.
func Open(path string) (*sqlite.Conn, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenCreate, sqlite.OpenReadWrite)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := sqlitex.ExecuteTransient(conn, schema, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return conn, nil
}

// Record stores every finding of list as accepted.
func Record(conn *sqlite.Conn, list *issue.List) error {
	endFn, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer endFn(&err)
	now := time.Now().UTC().Format(time.RFC3339)
	// Collapse repeated (path, line, message) findings to one fingerprint.
	for _, i := range issue.NewSetFromList(list).Issues {
		err = sqlitex.ExecuteTransient(conn,
			`INSERT OR IGNORE INTO fingerprints (path, line, message, recorded_at)
			 VALUES (?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{i.Path, i.Line, i.Message, now}})
		if err != nil {
			return fmt.Errorf("insert fingerprint: %w", err)
		}
	}
	return nil
}

func known(conn *sqlite.Conn, i *issue.Issue) (bool, error) {
	found := false
	err := sqlitex.ExecuteTransient(conn,
		`SELECT 1 FROM fingerprints WHERE path = ? AND line = ? AND message = ?`,
		&sqlitex.ExecOptions{
			Args: []any{i.Path, i.Line, i.Message},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				found = true
				return nil
			},
		})
	return found, err
}

// Suppress returns the findings of list that are not recorded in the
// baseline, preserving their order.
func Suppress(conn *sqlite.Conn, list *issue.List) (*issue.List, error) {
	fresh := &issue.List{}
	for _, i := range list.Issues {
		seen, err := known(conn, i)
		if err != nil {
			return nil, fmt.Errorf("query fingerprint: %w", err)
		}
		if !seen {
			fresh.Add(i)
		}
	}
	return fresh, nil
}
