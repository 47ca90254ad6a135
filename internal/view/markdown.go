package view

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"study-planner/internal/checklist"
)

// The default goldmark renderer drops raw HTML, so model output cannot
// inject markup into the page.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

func renderPlan(cl checklist.Service, text string) (Plan, error) {
	if text == "" {
		return Plan{}, nil
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return Plan{}, fmt.Errorf("render plan markdown: %w", err)
	}

	return Plan{
		Text:     text,
		HTML:     template.HTML(buf.String()),
		Progress: cl.GetStats(text),
		Done:     cl.IsFullyCompleted(text),
	}, nil
}
