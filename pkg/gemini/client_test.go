package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"study-planner/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	var maxTokens int

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("x-goog-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/"+gemini.DefaultModel+":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
			GenerationConfig struct {
				MaxOutputTokens int `json:"maxOutputTokens"`
			} `json:"generationConfig"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		maxTokens = req.GenerationConfig.MaxOutputTokens

		switch req.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
		case "no_candidates":
			w.Write([]byte(`{"candidates": []}`))
		case "long_plan":
			w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "Week 1"}]}, "finishReason": "MAX_TOKENS"}]}`))
		default:
			w.Write([]byte(`{
				"candidates": [{
					"content": {"parts": [{"text": "mocked "}, {"text": "response"}], "role": "model"},
					"finishReason": "STOP"
				}],
				"usageMetadata": {"promptTokenCount": 4, "candidatesTokenCount": 2, "totalTokenCount": 6}
			}`))
		}
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL, HTTPClient: ts.Client()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: "Hello world", MaxTokens: 300})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "mocked response" {
			t.Errorf("unexpected text: %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 6 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
		if maxTokens != 300 {
			t.Errorf("expected maxOutputTokens 300, got %d", maxTokens)
		}
		if resp.Truncated {
			t.Errorf("STOP should not be reported as truncated")
		}
	})

	t.Run("Cut Off At Max Tokens", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: "long_plan", MaxTokens: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resp.Truncated || resp.FinishReason != "MAX_TOKENS" {
			t.Errorf("expected truncated response, got %+v", resp)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: "cause_500"}); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("No Candidates", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: "no_candidates"}); err == nil {
			t.Fatalf("expected error for empty candidates")
		}
	})
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Errorf("expected error without API key")
	}
}
