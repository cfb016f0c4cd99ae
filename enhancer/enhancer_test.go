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

package enhancer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/options"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

func TestBuiltinKnownKind(t *testing.T) {
	e := Builtin(issue.MemoryLeak, "Potential memory leak: 'new' used without matching 'delete'")
	if !strings.Contains(e.Explanation, "deallocated") {
		t.Errorf("unexpected explanation: %q", e.Explanation)
	}
	if !strings.Contains(e.Recommendation, "std::unique_ptr") {
		t.Errorf("unexpected recommendation: %q", e.Recommendation)
	}
}

func TestBuiltinMessageOverride(t *testing.T) {
	e := Builtin(issue.StyleViolation,
		"Using directive brings all names from namespace 'std' into global namespace")
	if !strings.Contains(e.Explanation, "global namespace") {
		t.Errorf("message-specific entry not used: %q", e.Explanation)
	}
	if !strings.Contains(e.Recommendation, "using std::cout;") {
		t.Errorf("unexpected recommendation: %q", e.Recommendation)
	}
}

func TestBuiltinUnknownKind(t *testing.T) {
	e := Builtin(issue.Other, "some message")
	if e.Explanation != defaultExplanation {
		t.Errorf("expected default explanation, got %q", e.Explanation)
	}
}

func TestEnhanceWithoutAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	e := New(options.EnhancerConfig{Model: "gpt-4o", BaseURL: "http://unused"})

	list := &issue.List{}
	list.Add(&issue.Issue{Kind: issue.DeadCode, Message: "m", Suggestion: "keep me"})
	e.Enhance(list)

	if list.Issues[0].Explanation == "" {
		t.Error("expected builtin explanation")
	}
	if list.Issues[0].Suggestion != "keep me" {
		t.Error("builtin fallback must not replace an existing suggestion")
	}
}

func TestEnhanceWithServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.ResponseFormat.Type != "json_object" {
			t.Errorf("response_format = %q", req.ResponseFormat.Type)
		}
		content, _ := json.Marshal(enhancement{
			Explanation:    "model explanation",
			Recommendation: "model fix",
		})
		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: string(content)}})
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	e := New(options.EnhancerConfig{Model: "gpt-4o", BaseURL: server.URL, TimeoutSeconds: 5})

	list := &issue.List{}
	list.Add(&issue.Issue{Kind: issue.BufferOverflow, Message: "m", Suggestion: "old"})
	e.Enhance(list)

	if list.Issues[0].Explanation != "model explanation" {
		t.Errorf("Explanation = %q", list.Issues[0].Explanation)
	}
	if list.Issues[0].Suggestion != "model fix" {
		t.Errorf("Suggestion = %q", list.Issues[0].Suggestion)
	}
}

func TestEnhanceServerErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream busy", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	e := New(options.EnhancerConfig{Model: "gpt-4o", BaseURL: server.URL, TimeoutSeconds: 5})

	list := &issue.List{}
	list.Add(&issue.Issue{Kind: issue.NullDereference, Message: "m"})
	e.Enhance(list)

	if list.Issues[0].Explanation == "" {
		t.Error("expected builtin fallback after server errors")
	}
	if !strings.Contains(list.Issues[0].Explanation, "null") {
		t.Errorf("unexpected fallback explanation: %q", list.Issues[0].Explanation)
	}
}

func TestEnhanceKeepsOrderAndLength(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	e := New(options.EnhancerConfig{})

	list := &issue.List{}
	list.Add(&issue.Issue{Kind: issue.MemoryLeak, Message: "first"})
	list.Add(&issue.Issue{Kind: issue.DeadCode, Message: "second"})
	e.Enhance(list)

	if list.Len() != 2 || list.Issues[0].Message != "first" || list.Issues[1].Message != "second" {
		t.Errorf("enhancement reordered or dropped issues: %v", list.Issues)
	}
}
