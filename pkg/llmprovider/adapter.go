package llmprovider

import (
	"context"

	"study-planner/pkg/cohere"
	"study-planner/pkg/deepseek"
	"study-planner/pkg/gemini"
	"study-planner/pkg/qwen"
)

// CohereAdapter adapts pkg/cohere to llmprovider.Provider interface
type CohereAdapter struct {
	client cohere.ICohere
}

// NewCohereAdapter creates a new Cohere adapter
func NewCohereAdapter(client cohere.ICohere) *CohereAdapter {
	return &CohereAdapter{client: client}
}

// GenerateText implements Provider interface. Cohere's generate endpoint has
// no system role, so a system instruction is prepended to the prompt.
func (a *CohereAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	prompt := req.Prompt
	if req.SystemInstruction != "" {
		prompt = req.SystemInstruction + "\n\n" + prompt
	}

	resp, err := a.client.Generate(ctx, &cohere.Request{
		Prompt:      prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Truncated:    resp.Truncated,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *CohereAdapter) Name() string {
	return "cohere"
}

// Model returns model name
func (a *CohereAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateText implements Provider interface
func (a *GeminiAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Truncated:    resp.Truncated,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateText implements Provider interface
func (a *QwenAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &qwen.Request{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Truncated:    resp.Truncated,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateText implements Provider interface
func (a *DeepSeekAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    model,
		Truncated:    resp.Truncated,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}
