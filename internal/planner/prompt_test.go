package planner_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/pkg/llmprovider"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name        string
		courses     []string
		deadlines   []model.FormattedDeadline
		preferences string
		want        []string
	}{
		{
			name:        "single course",
			courses:     []string{"CS101"},
			deadlines:   []model.FormattedDeadline{{Course: "CS101", Date: "2024-06-01"}},
			preferences: "mornings only",
			want:        []string{"CS101", "2024-06-01", "mornings only"},
		},
		{
			name:    "several courses keep every value",
			courses: []string{"Math", "History", ""},
			deadlines: []model.FormattedDeadline{
				{Course: "Math", Date: "2024-05-01"},
				{Course: "History", Date: "2024-05-01"},
				{Course: "", Date: "2024-07-15"},
			},
			preferences: "short sessions,\nno weekends; 25 min pomodoros",
			want:        []string{"Math", "History", "2024-05-01", "2024-07-15", "short sessions,\nno weekends; 25 min pomodoros"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := planner.BuildPrompt(tt.courses, tt.deadlines, tt.preferences)
			for _, s := range tt.want {
				if !strings.Contains(prompt, s) {
					t.Errorf("prompt missing %q:\n%s", s, prompt)
				}
			}
		})
	}
}

func TestBuildPromptNoTruncation(t *testing.T) {
	long := strings.Repeat("prefer quiet places ", 500)
	prompt := planner.BuildPrompt([]string{"A"}, []model.FormattedDeadline{{Course: "A", Date: "2024-01-01"}}, long)
	if !strings.Contains(prompt, long) {
		t.Errorf("long preferences were truncated")
	}
}

func TestTimeContext(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"friday", time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC), "Today is 2024-05-10 (Friday). This week runs from 2024-05-06 to 2024-05-12."},
		{"sunday closes the week", time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC), "Today is 2024-05-12 (Sunday). This week runs from 2024-05-06 to 2024-05-12."},
		{"monday opens the week", time.Date(2024, 5, 13, 9, 0, 0, 0, time.UTC), "Today is 2024-05-13 (Monday). This week runs from 2024-05-13 to 2024-05-19."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := planner.TimeContext(tt.now); !strings.Contains(got, tt.want) {
				t.Errorf("TimeContext() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

type fakeGenerator struct {
	req  *llmprovider.Request
	resp *llmprovider.Response
	err  error
}

func (f *fakeGenerator) GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.req = req
	return f.resp, f.err
}

func TestPlanClient(t *testing.T) {
	t.Run("success uses max tokens", func(t *testing.T) {
		gen := &fakeGenerator{resp: &llmprovider.Response{Text: "plan"}}
		client := planner.NewPlanClient(gen, 0)

		text, err := client.Generate(context.Background(), "prompt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "plan" {
			t.Errorf("unexpected text %q", text)
		}
		if gen.req.MaxTokens != planner.DefaultMaxTokens || gen.req.Prompt != "prompt" {
			t.Errorf("unexpected request: %+v", gen.req)
		}
	})

	t.Run("failure is a service error", func(t *testing.T) {
		cause := errors.New("quota exceeded")
		client := planner.NewPlanClient(&fakeGenerator{err: cause}, 120)

		_, err := client.Generate(context.Background(), "prompt")
		var svcErr *planner.ServiceError
		if !errors.As(err, &svcErr) {
			t.Fatalf("expected ServiceError, got %v", err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("expected cause to be wrapped")
		}
	})
}

func TestIsValidationError(t *testing.T) {
	if !planner.IsValidationError(planner.ErrNoDeadlines) || !planner.IsValidationError(planner.ErrEmptyPreferences) {
		t.Errorf("expected validation errors to be recognized")
	}
	if planner.IsValidationError(&planner.ServiceError{Err: errors.New("x")}) {
		t.Errorf("service error is not a validation error")
	}
}
