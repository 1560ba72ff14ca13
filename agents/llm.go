package agents

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

// LLM generates a completion for a prompt under a system instruction. The
// agents degrade to deterministic fallbacks when no LLM is configured, so a
// nil LLM is always acceptable.
type LLM interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// GeminiLLM wraps the generative model client
type GeminiLLM struct {
	client *genai.Client
}

// NewGeminiLLM initializes a Gemini-backed LLM from GEMINI_API_KEY. Returns
// (nil, nil) when the key is unset so callers can run without an LLM.
func NewGeminiLLM(ctx context.Context) (*GeminiLLM, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiLLM{client: client}, nil
}

func (g *GeminiLLM) Complete(ctx context.Context, system, prompt string) (string, error) {
	model := g.client.GenerativeModel(geminiModel)
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

func (g *GeminiLLM) Close() error {
	return g.client.Close()
}

// complete runs the LLM when one is configured, otherwise returns fallback.
// LLM failures also fall back: the chat surface must answer even when the
// model is unreachable.
func complete(ctx context.Context, llm LLM, system, prompt, fallback string) string {
	if llm == nil {
		return fallback
	}
	out, err := llm.Complete(ctx, system, prompt)
	if err != nil || out == "" {
		return fallback
	}
	return out
}
