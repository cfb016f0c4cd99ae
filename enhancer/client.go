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

// Package enhancer enriches detected issues with explanations and fix
// recommendations, either from an OpenAI-compatible chat completions API
// or from a built-in catalog when no API key is available.
package enhancer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/checkerlib/options"
	"github.com/Ah2022/AI-Powered-Code-Reviewer/issue"
)

const (
	maxRetries = 3
	retryDelay = 2 * time.Second
)

type Enhancer struct {
	model     string
	baseURL   string
	apiKey    string
	client    *http.Client
	sessionID string
}

// New builds an Enhancer from the config. The API key comes from the
// OPENAI_API_KEY environment variable; when it is empty the enhancer
// falls back to the built-in explanation catalog.
func New(cfg options.EnhancerConfig) *Enhancer {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Enhancer{
		model:     cfg.Model,
		baseURL:   cfg.BaseURL,
		apiKey:    os.Getenv("OPENAI_API_KEY"),
		client:    &http.Client{Timeout: timeout},
		sessionID: uuid.NewString(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type enhancement struct {
	Explanation    string `json:"explanation"`
	Recommendation string `json:"recommendation"`
}

const systemPrompt = "You are an expert C++ code reviewer. For the reported issue, " +
	"reply with a JSON object holding two string fields: \"explanation\" describing " +
	"why the issue matters, and \"recommendation\" with a concrete fix, including a " +
	"short code example where helpful."

// Enhance fills in Explanation and Suggestion for every issue in the list.
// Issues are never reordered or dropped. API failures degrade to the
// built-in catalog per issue.
func (e *Enhancer) Enhance(list *issue.List) {
	if list == nil {
		return
	}
	for _, iss := range list.Issues {
		if e.apiKey == "" {
			applyBuiltin(iss)
			continue
		}
		enh, err := e.query(iss)
		if err != nil {
			glog.Warningf("enhancer.Enhance: %v", err)
			applyBuiltin(iss)
			continue
		}
		iss.Explanation = enh.Explanation
		if enh.Recommendation != "" {
			iss.Suggestion = enh.Recommendation
		}
	}
}

func applyBuiltin(iss *issue.Issue) {
	b := Builtin(iss.Kind, iss.Message)
	iss.Explanation = b.Explanation
	if iss.Suggestion == "" {
		iss.Suggestion = b.Recommendation
	}
}

func (e *Enhancer) query(iss *issue.Issue) (*enhancement, error) {
	prompt := fmt.Sprintf(
		"Issue type: %s\nSeverity: %s\nMessage: %s\nFile: %s\nLine: %d\nCode:\n%s",
		iss.Kind, iss.Severity, iss.Message, iss.Path, iss.Line, iss.CodeSnippet)
	body, err := json.Marshal(chatRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.2,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("enhancer.query: %v", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}
		enh, err := e.post(body)
		if err == nil {
			return enh, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (e *Enhancer) post(body []byte) (*enhancement, error) {
	req, err := http.NewRequest("POST", e.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("enhancer.post: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("X-Session-Id", e.sessionID)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enhancer.post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("enhancer.post: status %d %s", resp.StatusCode, resp.Status)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("enhancer.post: %v", err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("enhancer.post: empty choices in response")
	}
	var enh enhancement
	if err := json.Unmarshal([]byte(cr.Choices[0].Message.Content), &enh); err != nil {
		return nil, fmt.Errorf("enhancer.post: parse model output: %v", err)
	}
	if enh.Explanation == "" {
		return nil, fmt.Errorf("enhancer.post: model output missing explanation")
	}
	return &enh, nil
}
