package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNoTitles is returned when the model output contains no usable lines.
var ErrNoTitles = errors.New("no titles in model output")

// titleCount is the fixed number of suggestions handed to the client.
const titleCount = 2

// LLMService wraps the chat-completion collaborator for short
// text-generation tasks.
type LLMService struct {
	client *openai.Client
	model  string
}

var _ TitleGenerator = (*LLMService)(nil)

func NewLLMService(apiKey, model string) *LLMService {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &LLMService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// SuggestMealTitles asks the model for short meal names for a free-form
// description and returns the first 2 usable lines.
func (s *LLMService) SuggestMealTitles(ctx context.Context, description string) ([]string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You name meals for a food diary. Reply with one short title per line, no numbering, no bullets, nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Suggest names for this meal: %s", description),
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate titles: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrNoTitles
	}

	titles := ParseTitleLines(resp.Choices[0].Message.Content, titleCount)
	if len(titles) == 0 {
		return nil, ErrNoTitles
	}
	return titles, nil
}

// ParseTitleLines extracts up to n non-empty lines from model output,
// skipping any bulleted lines the model emits despite instructions.
func ParseTitleLines(raw string, n int) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•") {
			continue
		}
		out = append(out, line)
		if len(out) == n {
			break
		}
	}
	return out
}
