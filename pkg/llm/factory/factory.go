package factory

import (
	"context"
	"fmt"

	"jugaad-deals-be/pkg/llm"
	"jugaad-deals-be/pkg/llm/gemini"
	"jugaad-deals-be/pkg/llm/ollama"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

func NewLLMProvider(ctx context.Context, providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case ProviderGemini, "":
		return gemini.NewGeminiProvider(ctx, apiKey, modelName)
	case ProviderOllama:
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
