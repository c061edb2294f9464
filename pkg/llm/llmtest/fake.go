// Package llmtest provides a scriptable LLMProvider for tests.
package llmtest

import (
	"context"
	"sync"

	"jugaad-deals-be/pkg/llm"
)

// Provider answers every call with Reply, or fails with Err when set.
// Block makes calls wait for ctx to expire, for timeout paths.
type Provider struct {
	Reply string
	Err   error
	Block bool

	mu      sync.Mutex
	prompts []string
	chats   [][]llm.Message
}

var _ llm.LLMProvider = &Provider{}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	p.mu.Lock()
	p.chats = append(p.chats, append([]llm.Message(nil), history...))
	if len(history) > 0 {
		p.prompts = append(p.prompts, history[len(history)-1].Content)
	}
	p.mu.Unlock()

	if p.Block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if p.Err != nil {
		return "", p.Err
	}
	return p.Reply, nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

// Prompts returns the last user message of every call, in order.
func (p *Provider) Prompts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.prompts...)
}

// Chats returns every history the provider received.
func (p *Provider) Chats() [][]llm.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][]llm.Message(nil), p.chats...)
}

// Calls is the number of requests made so far.
func (p *Provider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.prompts)
}
