package models

import (
	"context"
	"fmt"
)

// NewProvider resolves a provider name to a concrete Generator.
// Credentials are read from the environment by each constructor.
func NewProvider(ctx context.Context, provider string, model string) (Generator, error) {
	switch provider {
	case "openai":
		return NewOpenAILLM(model), nil
	case "gemini", "google":
		return NewGeminiLLM(ctx, model)
	case "ollama":
		return NewOllamaLLM(model)
	case "anthropic", "claude":
		return NewAnthropicLLM(model), nil
	case "dummy":
		return NewDummyLLM(""), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
