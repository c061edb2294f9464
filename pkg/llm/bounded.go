package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyResponse = errors.New("llm: empty response")
	ErrNoProvider    = errors.New("llm: no provider configured")
)

// GenerateWithin runs a single-prompt completion under a deadline. The returned
// text is trimmed; a blank completion is reported as ErrEmptyResponse.
func GenerateWithin(ctx context.Context, p LLMProvider, timeout time.Duration, prompt string, opts ...Option) (string, error) {
	if p == nil {
		return "", ErrNoProvider
	}
	return within(ctx, timeout, func(ctx context.Context) (string, error) {
		return p.Generate(ctx, prompt, opts...)
	})
}

// ChatWithin is GenerateWithin for a full history.
func ChatWithin(ctx context.Context, p LLMProvider, timeout time.Duration, history []Message, opts ...Option) (string, error) {
	if p == nil {
		return "", ErrNoProvider
	}
	return within(ctx, timeout, func(ctx context.Context) (string, error) {
		return p.Chat(ctx, history, opts...)
	})
}

func within(ctx context.Context, timeout time.Duration, call func(context.Context) (string, error)) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	text, err := call(ctx)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("oracle timed out after %s: %w", timeout, err)
		}
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
