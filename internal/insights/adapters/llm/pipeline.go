package llm

import (
	"context"
	"fmt"
	"strings"

	"social-insights-service/internal/insights/core/domain"
	"social-insights-service/internal/insights/core/ports"
)

const defaultMaxContextBytes = 64 << 10

// Prompt is one rendered completion request.
type Prompt struct {
	System      string
	User        string
	Model       string
	Temperature float64
}

// Completer sends a single prompt to a model and returns its text.
type Completer interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

// Pipeline renders the flow template locally and asks a model directly,
// without a Langflow server in between. It has no vector store, so {context}
// is the attached dataset only.
type Pipeline struct {
	name            string
	completer       Completer
	maxContextBytes int
}

var _ ports.PipelinePort = (*Pipeline)(nil)

func New(name string, completer Completer, maxContextBytes int) *Pipeline {
	if maxContextBytes <= 0 {
		maxContextBytes = defaultMaxContextBytes
	}
	return &Pipeline{name: name, completer: completer, maxContextBytes: maxContextBytes}
}

func (p *Pipeline) Name() string { return p.name }

func (p *Pipeline) Run(ctx context.Context, req domain.PipelineRequest) (domain.PipelineResult, error) {
	var dataset string
	if req.Dataset != nil {
		dataset = truncateLines(string(req.Dataset.Content), p.maxContextBytes)
	}

	prompt := Prompt{
		System:      req.Params.SystemMessage,
		User:        Render(withHistorySlot(req.Params.Template, req.History), dataset, req.Params.InputValue, FormatHistory(req.History)),
		Model:       req.Params.Model,
		Temperature: req.Params.Temperature,
	}

	text, err := p.completer.Complete(ctx, prompt)
	if err != nil {
		return domain.PipelineResult{}, fmt.Errorf("%s: %w", p.name, err)
	}
	if strings.TrimSpace(text) == "" {
		return domain.NoMessage("model returned an empty completion"), nil
	}
	return domain.MessageResult(strings.TrimSpace(text)), nil
}

// Render fills the {context}, {question} and {History} placeholders. An empty
// template yields the question alone.
func Render(template, context, question, history string) string {
	if template == "" {
		return question
	}
	return strings.NewReplacer(
		"{context}", context,
		"{question}", question,
		"{History}", history,
	).Replace(template)
}

// withHistorySlot adds a {History} placeholder ahead of the final "Answer:"
// (or at the end) when there are turns and the template has none. Langflow
// keeps chat memory per session, so its chat template carries no slot.
func withHistorySlot(template string, turns []domain.Turn) string {
	if len(turns) == 0 || template == "" || strings.Contains(template, "{History}") {
		return template
	}
	if i := strings.LastIndex(template, "Answer:"); i >= 0 {
		return template[:i] + "{History}\n" + template[i:]
	}
	return template + "\n{History}"
}

func FormatHistory(turns []domain.Turn) string {
	if len(turns) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, t := range turns {
		sb.WriteString(fmt.Sprintf("User: %s\nAI: %s\n", t.Question, t.Answer))
	}
	return sb.String()
}

// truncateLines cuts s to at most max bytes on a line boundary.
func truncateLines(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := strings.LastIndexByte(s[:max], '\n')
	if cut <= 0 {
		return s[:max]
	}
	return s[:cut+1]
}
