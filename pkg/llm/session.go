package llm

import (
	"context"
	"sync"
	"time"
)

// Session is a running conversation context with the oracle. It carries the
// persona exchange that every free-form prompt is sent after. The history is
// fixed once primed; user turns are not accumulated.
type Session struct {
	ID        string
	CreatedAt time.Time

	provider LLMProvider
	timeout  time.Duration

	mu      sync.RWMutex
	history []Message
	primed  bool
}

// NewSession builds a session whose context is the persona instruction followed
// by ack as the model's reply. Prime replaces ack with the oracle's own answer.
func NewSession(id string, provider LLMProvider, timeout time.Duration, persona, ack string) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		provider:  provider,
		timeout:   timeout,
		history: []Message{
			{Role: RoleUser, Content: persona},
			{Role: RoleModel, Content: ack},
		},
	}
}

// Prime sends the persona instruction to the oracle once. On failure the
// session keeps the static acknowledgement and stays usable.
func (s *Session) Prime(ctx context.Context) error {
	s.mu.RLock()
	if s.primed {
		s.mu.RUnlock()
		return nil
	}
	persona := s.history[0]
	s.mu.RUnlock()

	reply, err := ChatWithin(ctx, s.provider, s.timeout, []Message{persona})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[1] = Message{Role: RoleModel, Content: reply}
	s.primed = true
	return nil
}

// Primed reports whether the persona instruction reached the oracle.
func (s *Session) Primed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primed
}

// Ask sends prompt within the session context.
func (s *Session) Ask(ctx context.Context, prompt string, opts ...Option) (string, error) {
	s.mu.RLock()
	history := make([]Message, 0, len(s.history)+1)
	history = append(history, s.history...)
	s.mu.RUnlock()

	history = append(history, Message{Role: RoleUser, Content: prompt})
	return ChatWithin(ctx, s.provider, s.timeout, history, opts...)
}
