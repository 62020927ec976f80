package coach

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
)

type stubCompleter struct {
	reply string
	err   error
	req   openai.ChatCompletionRequest
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.req = req
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.reply}},
		},
	}, nil
}

func sampleProblem() *problemgen.Problem {
	g := problemgen.New(problemgen.NewPoolRegistry(), problemgen.NewRand(1))
	return g.Generate(problemgen.Request{
		Category:   problemgen.CategoryBending,
		Difficulty: problemgen.Intermediate,
	})
}

func TestNewWithoutKeyDisables(t *testing.T) {
	require.Nil(t, New(""))
}

func TestTipSendsProblemContext(t *testing.T) {
	stub := &stubCompleter{reply: "  You swapped b and h in Z.  "}
	c := &Coach{client: stub, model: openai.GPT4oMini}

	p := sampleProblem()
	tip, err := c.Tip(context.Background(), p, p.Choices[0])
	require.NoError(t, err)
	require.Equal(t, "You swapped b and h in Z.", tip)

	require.Len(t, stub.req.Messages, 2)
	require.Equal(t, openai.ChatMessageRoleSystem, stub.req.Messages[0].Role)
	require.Contains(t, stub.req.Messages[1].Content, p.Text)
	require.Contains(t, stub.req.Messages[1].Content, "Student chose")
}

func TestTipPropagatesError(t *testing.T) {
	c := &Coach{client: &stubCompleter{err: errors.New("rate limited")}, model: openai.GPT4oMini}
	_, err := c.Tip(context.Background(), sampleProblem(), 1)
	require.Error(t, err)
}

func TestTipRejectsEmptyResponse(t *testing.T) {
	c := &Coach{client: &emptyCompleter{}, model: openai.GPT4oMini}
	_, err := c.Tip(context.Background(), sampleProblem(), 1)
	require.Error(t, err)
}

type emptyCompleter struct{}

func (emptyCompleter) CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{}, nil
}
