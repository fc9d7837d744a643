package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/killallgit/beekit/pkg/chat"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
)

// RenderFunc turns an ordered conversation into a single prompt string.
type RenderFunc func(messages []chat.Message) (string, error)

// Template pairs a model-specific render function with the markers the model
// emits to end its turn.
type Template struct {
	Render       RenderFunc
	StopSequence []string
}

// Format renders the messages into a prompt string.
func (t Template) Format(messages []chat.Message) (string, error) {
	if t.Render == nil {
		return "", fmt.Errorf("template has no render function")
	}
	return t.Render(messages)
}

// FormatPrompt renders the messages as a langchaingo prompt value.
func (t Template) FormatPrompt(messages []chat.Message) (llms.PromptValue, error) {
	rendered, err := t.Format(messages)
	if err != nil {
		return nil, err
	}
	return prompts.StringPromptValue(rendered), nil
}

// CallOptions returns the langchaingo call options that make a model stop at
// the end of its turn.
func (t Template) CallOptions() []llms.CallOption {
	if len(t.StopSequence) == 0 {
		return nil
	}
	return []llms.CallOption{llms.WithStopWords(t.StopSequence)}
}

// TrimStop truncates output at the earliest stop sequence.
func (t Template) TrimStop(output string) string {
	cut := len(output)
	for _, stop := range t.StopSequence {
		if stop == "" {
			continue
		}
		if idx := strings.Index(output, stop); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return output[:cut]
}

// Generate renders the conversation, runs it through the model as a single
// prompt and returns the assistant's reply trimmed at the stop sequence.
func (t Template) Generate(ctx context.Context, llm llms.Model, messages []chat.Message, options ...llms.CallOption) (string, error) {
	rendered, err := t.Format(messages)
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	opts := append(t.CallOptions(), options...)
	output, err := llms.GenerateFromSinglePrompt(ctx, llm, rendered, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}

	return t.TrimStop(output), nil
}
