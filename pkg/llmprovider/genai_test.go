package llmprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenAIAdapter_GenerateText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "models/gemini-2.0-flash:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "Review notes daily."}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 8, "candidatesTokenCount": 4, "totalTokenCount": 12}
		}`))
	}))
	defer ts.Close()

	adapter, err := NewGenAIAdapter(context.Background(), GenAIConfig{
		APIKey:     "test-key",
		Model:      "gemini-2.0-flash",
		BaseURL:    ts.URL,
		HTTPClient: ts.Client(),
	})
	if err != nil {
		t.Fatalf("NewGenAIAdapter failed: %v", err)
	}

	resp, err := adapter.GenerateText(context.Background(), &Request{Prompt: "plan", MaxTokens: 300})
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if resp.Text != "Review notes daily." {
		t.Errorf("unexpected text: %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 12 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}
}

func TestNewGenAIAdapter_RequiresKey(t *testing.T) {
	if _, err := NewGenAIAdapter(context.Background(), GenAIConfig{}); err == nil {
		t.Errorf("expected error without API key")
	}
}
