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

package issue

type issueBlood struct {
	path    string
	line    int
	message string
}

// Set is an alternative to List. When Add() is called, it checks issueBlood
// to identify unique issues. It preserves the issues' adding order.
type Set struct {
	// You can manipulate List beyond the limits.
	List
	stored map[issueBlood]struct{}
}

func NewSet() *Set {
	set := Set{}
	set.stored = make(map[issueBlood]struct{})
	return &set
}

func NewSetFromList(list *List) *Set {
	set := NewSet()
	set.AddList(list)
	return set
}

func (s *Set) Add(i *Issue) {
	blood := issueBlood{
		path:    i.Path,
		line:    i.Line,
		message: i.Message,
	}
	if _, reported := s.stored[blood]; !reported {
		s.stored[blood] = struct{}{}
		s.Issues = append(s.Issues, i)
	}
}

func (s *Set) AddList(list *List) {
	for _, i := range list.Issues {
		s.Add(i)
	}
}
