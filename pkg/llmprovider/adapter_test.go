package llmprovider

import (
	"context"
	"testing"

	"study-planner/pkg/deepseek"
)

type fakeDeepSeek struct {
	got  *deepseek.Request
	resp *deepseek.Response
}

func (f *fakeDeepSeek) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	f.got = req
	return f.resp, nil
}

func (f *fakeDeepSeek) Model() string {
	return "deepseek-chat"
}

func TestDeepSeekAdapter_GenerateText(t *testing.T) {
	client := &fakeDeepSeek{resp: &deepseek.Response{
		Text:      "Week 1",
		Truncated: true,
		Usage:     deepseek.Usage{InputTokens: 3, OutputTokens: 2, TotalTokens: 5},
	}}
	adapter := NewDeepSeekAdapter(client)

	resp, err := adapter.GenerateText(context.Background(), &Request{
		SystemInstruction: "You plan study time.",
		Prompt:            "plan",
		MaxTokens:         300,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if client.got.SystemInstruction != "You plan study time." || client.got.Prompt != "plan" || client.got.MaxTokens != 300 {
		t.Errorf("Request not passed through: %+v", client.got)
	}
	if resp.Text != "Week 1" || !resp.Truncated {
		t.Errorf("Unexpected response: %+v", resp)
	}
	if resp.ModelName != "deepseek-chat" {
		t.Errorf("Expected the client model when the response names none, got: %s", resp.ModelName)
	}
	if resp.Usage.TotalTokens != 5 {
		t.Errorf("Unexpected usage: %+v", resp.Usage)
	}
}
