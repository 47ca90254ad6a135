package cohere

import (
	"fmt"
	"net/http"
)

// Config holds Cohere client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("cohere: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Request is a single text generation request.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Response is the first generation returned for a Request.
type Response struct {
	Text string
	// Truncated is set when the generation stopped at MaxTokens.
	Truncated bool
	Usage     Usage
}

// Usage tracks billed tokens.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// cohereImpl is the internal implementation of ICohere
type cohereImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Wire types for POST /v1/generate.

type generateRequest struct {
	Model       string   `json:"model,omitempty"`
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

type generateResponse struct {
	ID          string       `json:"id"`
	Generations []generation `json:"generations"`
	Meta        struct {
		BilledUnits struct {
			InputTokens  int `json:"input_tokens"`
			OutputTokens int `json:"output_tokens"`
		} `json:"billed_units"`
	} `json:"meta"`
}

type generation struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
}

type errorResponse struct {
	Message string `json:"message"`
}
