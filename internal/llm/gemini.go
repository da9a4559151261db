package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash-001"

type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to init gemini client: %w", err)
	}
	return &GeminiClient{model: client.GenerativeModel(geminiModel)}, nil
}

// Generate flattens the chat history into a single prompt. Gemini separates
// system instructions from turns, but our prompts are short enough that a
// labelled transcript works across providers.
func (c *GeminiClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	var b strings.Builder
	for _, m := range messages {
		switch m.Role {
		case "system":
			b.WriteString(m.Content)
			b.WriteString("\n\n")
		default:
			b.WriteString(m.Content)
			b.WriteString("\n")
		}
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(b.String()))
	if err != nil {
		return Response{}, fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Response{}, fmt.Errorf("empty response from gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	txt, ok := part.(genai.Text)
	if !ok {
		return Response{}, fmt.Errorf("unexpected response part type %T", part)
	}

	out := Response{Content: string(txt), Model: geminiModel}
	if resp.UsageMetadata != nil {
		out.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		out.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		out.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}
	return out, nil
}
