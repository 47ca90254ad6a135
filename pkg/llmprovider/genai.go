package llmprovider

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// GenAIConfig configures the official Google GenAI SDK provider.
type GenAIConfig struct {
	APIKey     string
	Model      string
	BaseURL    string // optional, for tests and proxies
	HTTPClient *http.Client
}

// GenAIAdapter drives Gemini models through google.golang.org/genai.
type GenAIAdapter struct {
	client *genai.Client
	model  string
}

// NewGenAIAdapter creates a GenAI client for the Gemini API backend.
func NewGenAIAdapter(ctx context.Context, cfg GenAIConfig) (*GenAIAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("genai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("genai: failed to create client: %w", err)
	}

	return &GenAIAdapter{client: client, model: cfg.Model}, nil
}

// GenerateText implements Provider interface
func (a *GenAIAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	genCfg := &genai.GenerateContentConfig{}
	if req.MaxTokens > 0 {
		genCfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature > 0 {
		genCfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.SystemInstruction != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(req.Prompt), genCfg)
	if err != nil {
		return nil, fmt.Errorf("genai: generate failed: %w", err)
	}

	usage := &Usage{}
	if result.UsageMetadata != nil {
		usage.InputTokens = int(result.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(result.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int(result.UsageMetadata.TotalTokenCount)
	}

	truncated := len(result.Candidates) > 0 && result.Candidates[0].FinishReason == genai.FinishReasonMaxTokens

	return &Response{
		Text:         result.Text(),
		ProviderName: a.Name(),
		ModelName:    a.model,
		Truncated:    truncated,
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GenAIAdapter) Name() string {
	return "genai"
}

// Model returns model name
func (a *GenAIAdapter) Model() string {
	return a.model
}
