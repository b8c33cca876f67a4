package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// AIService drafts task briefs with OpenAI chat completions.
type AIService struct {
	client *openai.Client
}

// BriefRequest describes the task a brief is drafted for.
type BriefRequest struct {
	Title           string
	ContentType     string
	Platform        string
	DurationSeconds *int
	Dimensions      *string
	Notes           string
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// DraftBrief returns a plain-text brief for req.
func (s *AIService) DraftBrief(ctx context.Context, req BriefRequest) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You write concise creative briefs for an agency's designers and marketers. Answer with the brief only, as plain text.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: briefPrompt(req),
				},
			},
			Temperature: 0.4,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func briefPrompt(req BriefRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", req.Title)
	if req.ContentType != "" {
		fmt.Fprintf(&b, "Content type: %s\n", req.ContentType)
	}
	if req.Platform != "" {
		fmt.Fprintf(&b, "Platform: %s\n", req.Platform)
	}
	if req.DurationSeconds != nil {
		fmt.Fprintf(&b, "Duration: %d seconds\n", *req.DurationSeconds)
	}
	if req.Dimensions != nil && *req.Dimensions != "" {
		fmt.Fprintf(&b, "Dimensions: %s\n", *req.Dimensions)
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		fmt.Fprintf(&b, "Client notes:\n%s\n", notes)
	}
	b.WriteString("\nCover the goal, audience, key message, visual direction and deliverables.")
	return b.String()
}
