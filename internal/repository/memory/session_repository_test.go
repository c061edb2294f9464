package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"jugaad-deals-be/internal/pkg/logger"
	"jugaad-deals-be/pkg/llm/llmtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_GetOrCreate(t *testing.T) {
	provider := &llmtest.Provider{Reply: "Namaste, JUGAAD here!"}
	repo := NewSessionRepository(provider, time.Hour, time.Second, 0, logger.NewNopLogger())

	first := repo.GetOrCreate(context.Background(), "tenant-a")
	require.NotNil(t, first)
	assert.Equal(t, "tenant-a", first.ID)
	assert.True(t, first.Primed())
	assert.Equal(t, 1, provider.Calls())

	again := repo.GetOrCreate(context.Background(), "tenant-a")
	assert.Same(t, first, again)
	assert.Equal(t, 1, provider.Calls(), "existing session must not be primed twice")

	other := repo.GetOrCreate(context.Background(), "tenant-b")
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, repo.Count())
}

func TestSessionRepository_GeneratesID(t *testing.T) {
	repo := NewSessionRepository(&llmtest.Provider{Reply: "ok"}, time.Hour, time.Second, 0, logger.NewNopLogger())

	s := repo.GetOrCreate(context.Background(), "")
	assert.NotEmpty(t, s.ID)

	got, ok := repo.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)
}

func TestSessionRepository_PrimeFailureKeepsSession(t *testing.T) {
	provider := &llmtest.Provider{Err: errors.New("oracle down")}
	repo := NewSessionRepository(provider, time.Hour, time.Second, 0, logger.NewNopLogger())

	s := repo.GetOrCreate(context.Background(), "tenant-a")
	require.NotNil(t, s)
	assert.False(t, s.Primed())

	repo.Delete("tenant-a")
	_, ok := repo.Get("tenant-a")
	assert.False(t, ok)
}

func TestSessionRepository_CapsLiveSessions(t *testing.T) {
	provider := &llmtest.Provider{Reply: "ok"}
	repo := NewSessionRepository(provider, time.Hour, time.Second, 2, logger.NewNopLogger())

	repo.GetOrCreate(context.Background(), "tenant-a")
	repo.GetOrCreate(context.Background(), "tenant-b")
	require.Equal(t, 2, provider.Calls())

	extra := repo.GetOrCreate(context.Background(), "tenant-c")
	require.NotNil(t, extra)
	assert.Equal(t, "tenant-c", extra.ID)
	assert.False(t, extra.Primed())
	assert.Equal(t, 2, provider.Calls(), "a session over the cap must not be primed")
	assert.Equal(t, 2, repo.Count())

	_, ok := repo.Get("tenant-c")
	assert.False(t, ok)

	again := repo.GetOrCreate(context.Background(), "tenant-a")
	assert.True(t, again.Primed(), "existing sessions stay reachable at the cap")
}
