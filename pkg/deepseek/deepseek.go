package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func newDeepSeekImpl(cfg Config) *deepSeekImpl {
	return &deepSeekImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		endpoint:   cfg.BaseURL + chatCompletionsPath,
		httpClient: cfg.HTTPClient,
	}
}

func (d *deepSeekImpl) Model() string {
	return d.model
}

// GenerateContent sends req as a single-turn chat and returns the first choice.
func (d *deepSeekImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(d.buildRequest(req))
	if err != nil {
		return nil, fmt.Errorf("deepseek: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("deepseek: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+d.apiKey)

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("deepseek: API error %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("deepseek: API error %d: %s", resp.StatusCode, string(raw))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("deepseek: failed to decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("deepseek: response %s has no choices", chat.ID)
	}

	first := chat.Choices[0]
	return &Response{
		Text:         first.Message.Content,
		Model:        chat.Model,
		FinishReason: first.FinishReason,
		Truncated:    first.FinishReason == finishReasonLength,
		Usage: Usage{
			InputTokens:  chat.Usage.PromptTokens,
			OutputTokens: chat.Usage.CompletionTokens,
			TotalTokens:  chat.Usage.TotalTokens,
		},
	}, nil
}

func (d *deepSeekImpl) buildRequest(req *Request) chatRequest {
	chat := chatRequest{
		Model:       d.model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if req.SystemInstruction != "" {
		chat.Messages = append(chat.Messages, chatMessage{Role: "system", Content: req.SystemInstruction})
	}
	chat.Messages = append(chat.Messages, chatMessage{Role: "user", Content: req.Prompt})
	return chat
}
