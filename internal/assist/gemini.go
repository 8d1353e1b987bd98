package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/portfolio-studio/internal/types"
)

const geminiModel = "gemini-2.0-flash"

const aboutPromptTemplate = `You are helping someone write the "about" section of their portfolio website.

Write a short first-person summary (2-4 sentences, plain text, no markdown) based on this profile:

%s

Return only the summary text.`

// geminiSuggester implements Suggester using Google Gemini.
type geminiSuggester struct {
	client *genai.Client
}

func newGeminiSuggester(ctx context.Context, apiKey string) (*geminiSuggester, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiSuggester{client: client}, nil
}

func (s *geminiSuggester) SuggestAbout(ctx context.Context, p *types.Profile) (string, error) {
	if p == nil {
		return "", fmt.Errorf("profile is required")
	}

	doc, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding profile: %w", err)
	}

	model := s.client.GenerativeModel(geminiModel)
	model.SetTemperature(0.4)

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(aboutPromptTemplate, doc)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

func (s *geminiSuggester) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.TrimSpace(strings.Join(parts, "")), nil
}
