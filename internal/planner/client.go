package planner

import (
	"context"

	"study-planner/pkg/llmprovider"
)

// DefaultMaxTokens is the output cap sent with every generation request.
const DefaultMaxTokens = 300

// PlanClient turns a prompt into plan text.
type PlanClient interface {
	// Generate returns the plan text, or a *ServiceError when no text could be produced.
	Generate(ctx context.Context, prompt string) (string, error)
}

// TextGenerator is the part of llmprovider.Manager a PlanClient needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type providerClient struct {
	gen       TextGenerator
	maxTokens int
}

// NewPlanClient returns a PlanClient that sends each prompt once, capped at maxTokens.
func NewPlanClient(gen TextGenerator, maxTokens int) PlanClient {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &providerClient{gen: gen, maxTokens: maxTokens}
}

func (c *providerClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.gen.GenerateText(ctx, &llmprovider.Request{
		Prompt:    prompt,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", &ServiceError{Err: err}
	}
	return resp.Text, nil
}
