package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	s := New()

	got := s.Build([]string{"Math: 2024-05-01", "", "Art\nHistory: 2024-06-01"})
	want := "- [ ] Math: 2024-05-01\n- [ ] (untitled)\n- [ ] Art History: 2024-06-01\n"
	assert.Equal(t, want, got)

	assert.Len(t, s.ParseCheckboxes(got), 3)
	assert.Empty(t, s.Build(nil))
}

func TestParseCheckboxes(t *testing.T) {
	s := New()
	content := "## Week 1\n- [ ] Read chapter 1\n  - [x] Exercises 1-5\n- [X] Review notes\n\n" +
		"```\n- [ ] not a task\n```\n" +
		"Plain line with `- [ ] inline` code\n"

	boxes := s.ParseCheckboxes(content)
	if assert.Len(t, boxes, 3) {
		assert.Equal(t, "Read chapter 1", boxes[0].Text)
		assert.False(t, boxes[0].Checked)
		assert.Equal(t, "  ", boxes[1].Indent)
		assert.True(t, boxes[1].Checked)
		assert.True(t, boxes[2].Checked)
		assert.Equal(t, 2, boxes[2].Line)
	}
}

func TestGetStats(t *testing.T) {
	s := New()

	tests := []struct {
		name    string
		content string
		want    Stats
	}{
		{"no checkboxes", "Study every morning.", Stats{}},
		{"half done", "- [x] a\n- [ ] b\n", Stats{Total: 2, Completed: 1, Pending: 1, Progress: 50}},
		{"all done", "- [x] a\n- [x] b\n", Stats{Total: 2, Completed: 2, Progress: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.GetStats(tt.content))
		})
	}
}

func TestIsFullyCompleted(t *testing.T) {
	s := New()
	assert.False(t, s.IsFullyCompleted("no list"))
	assert.False(t, s.IsFullyCompleted("- [x] a\n- [ ] b"))
	assert.True(t, s.IsFullyCompleted("- [x] a\n- [X] b"))
}
