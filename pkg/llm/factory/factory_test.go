package factory

import (
	"context"
	"testing"

	"jugaad-deals-be/pkg/llm/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	p, err := NewLLMProvider(context.Background(), ProviderOllama, "", "", "")
	require.NoError(t, err)
	assert.IsType(t, &ollama.OllamaProvider{}, p)

	_, err = NewLLMProvider(context.Background(), ProviderGemini, "", "", "")
	assert.Error(t, err, "gemini needs an API key")

	_, err = NewLLMProvider(context.Background(), "openai", "", "", "")
	assert.Error(t, err)
}
