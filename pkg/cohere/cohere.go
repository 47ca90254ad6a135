package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newCohereImpl creates a new Cohere implementation
func newCohereImpl(cfg Config) *cohereImpl {
	return &cohereImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Generate sends a prompt to the Cohere generate endpoint
func (c *cohereImpl) Generate(ctx context.Context, req *Request) (*Response, error) {
	genReq := generateRequest{
		Model:     c.model,
		Prompt:    req.Prompt,
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature > 0 {
		genReq.Temperature = &req.Temperature
	}

	body, err := json.Marshal(genReq)
	if err != nil {
		return nil, fmt.Errorf("cohere: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/generate", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("cohere: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("cohere: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if json.Unmarshal(bodyBytes, &errResp) == nil && errResp.Message != "" {
			return nil, fmt.Errorf("cohere: API error %d: %s", resp.StatusCode, errResp.Message)
		}
		return nil, fmt.Errorf("cohere: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("cohere: failed to decode response: %w", err)
	}

	if len(genResp.Generations) == 0 {
		return nil, fmt.Errorf("cohere: response %s has no generations", genResp.ID)
	}

	first := genResp.Generations[0]
	return &Response{
		Text:      first.Text,
		Truncated: first.FinishReason == finishReasonMaxTokens,
		Usage: Usage{
			InputTokens:  genResp.Meta.BilledUnits.InputTokens,
			OutputTokens: genResp.Meta.BilledUnits.OutputTokens,
		},
	}, nil
}

// Model returns the model being used
func (c *cohereImpl) Model() string {
	return c.model
}
