// Package assist generates writing suggestions for profile content.
package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-studio/internal/types"
)

// Suggester produces an improved "about" blurb for a profile.
type Suggester interface {
	// SuggestAbout returns a short first-person summary drafted from the
	// rest of the profile.
	SuggestAbout(ctx context.Context, p *types.Profile) (string, error)
	// Close releases any resources held by the suggester
	Close() error
}

// New returns a Gemini-backed suggester when an API key is configured and a
// local deterministic one otherwise, so the editor works offline.
func New(ctx context.Context, apiKey string) (Suggester, error) {
	if apiKey == "" {
		return &localSuggester{}, nil
	}
	return newGeminiSuggester(ctx, apiKey)
}

// localSuggester drafts a summary from the profile fields without calling
// any external service.
type localSuggester struct{}

func (s *localSuggester) SuggestAbout(_ context.Context, p *types.Profile) (string, error) {
	if p == nil {
		return "", fmt.Errorf("profile is required")
	}

	var b strings.Builder

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = "professional"
	}
	fmt.Fprintf(&b, "I am a %s", strings.ToLower(title))
	if loc := strings.TrimSpace(p.Location); loc != "" {
		fmt.Fprintf(&b, " based in %s", loc)
	}
	b.WriteString(".")

	if len(p.Skills) > 0 {
		top := p.Skills
		if len(top) > 3 {
			top = top[:3]
		}
		fmt.Fprintf(&b, " I work primarily with %s.", strings.Join(top, ", "))
	}

	if len(p.Experience) > 0 {
		latest := p.Experience[0]
		if latest.Company != "" {
			fmt.Fprintf(&b, " Most recently I was %s at %s.", latest.Position, latest.Company)
		}
	}

	return b.String(), nil
}

func (s *localSuggester) Close() error {
	return nil
}
