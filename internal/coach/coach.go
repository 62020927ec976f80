// Package coach produces short remedial tips after wrong answers using
// an OpenAI chat model. The drill works fully without it; a missing API
// key simply disables tips.
package coach

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
)

// completer is the slice of the OpenAI client the coach calls; split out
// so tests can stub the API.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Coach generates one-sentence misconception hints.
type Coach struct {
	client completer
	model  string
}

// New creates a Coach. Returns nil when apiKey is empty, which callers
// treat as tips-disabled.
func New(apiKey string) *Coach {
	if apiKey == "" {
		return nil
	}
	return &Coach{client: openai.NewClient(apiKey), model: openai.GPT4oMini}
}

const systemPrompt = `You are a structural mechanics tutor. A student picked a wrong
answer on a multiple-choice drill problem. In one or two sentences, name the likely
mistake behind their chosen value and point them at the right approach. Do not
restate the full solution; the worked derivation is shown separately.`

// Tip returns a short remedial hint for a wrong answer.
func (c *Coach) Tip(ctx context.Context, p *problemgen.Problem, chosen float64) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: 120,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(p, chosen)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildPrompt assembles the problem context for the model.
func buildPrompt(p *problemgen.Problem, chosen float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problem (%s): %s\n", p.Category.DisplayName(), p.Text)
	fmt.Fprintf(&b, "Correct answer: %s\n", strconv.FormatFloat(p.Answer, 'f', -1, 64))
	fmt.Fprintf(&b, "Student chose: %s\n", strconv.FormatFloat(chosen, 'f', -1, 64))
	fmt.Fprintf(&b, "Worked solution:\n%s\n", p.Explanation)
	return b.String()
}
