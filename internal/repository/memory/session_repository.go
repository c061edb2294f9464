package memory

import (
	"context"
	"sync"
	"time"

	"jugaad-deals-be/internal/constant"
	"jugaad-deals-be/internal/pkg/logger"
	"jugaad-deals-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const defaultMaxSessions = 1000

// SessionRepository keeps chat sessions in memory, keyed by id. Sessions
// expire after the configured TTL of inactivity. At most maxSessions are held;
// past that, new ids get a transient session that is neither primed nor kept.
type SessionRepository struct {
	cache       *cache.Cache
	provider    llm.LLMProvider
	timeout     time.Duration
	maxSessions int
	logger      logger.ILogger

	// serialises creation so two requests for a new id share one session
	mu sync.Mutex
}

func NewSessionRepository(provider llm.LLMProvider, ttl, oracleTimeout time.Duration, maxSessions int, log logger.ILogger) *SessionRepository {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	// Purge expired items every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache:       c,
		provider:    provider,
		timeout:     oracleTimeout,
		maxSessions: maxSessions,
		logger:      log,
	}
}

func (r *SessionRepository) Save(session *llm.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*llm.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*llm.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}

// GetOrCreate returns the session for id, creating and priming it when it does
// not exist and the repository has room. An empty id yields a fresh session with a generated id. Every hit
// refreshes the TTL.
func (r *SessionRepository) GetOrCreate(ctx context.Context, sessionID string) *llm.Session {
	if sessionID != "" {
		if s, ok := r.Get(sessionID); ok {
			r.Save(s)
			return s
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if sessionID == "" {
		sessionID = uuid.NewString()
	} else if s, ok := r.Get(sessionID); ok {
		r.Save(s)
		return s
	}

	s := llm.NewSession(sessionID, r.provider, r.timeout, constant.PersonaPromptV1, constant.PersonaAckV1)
	if r.cache.ItemCount() >= r.maxSessions {
		r.logger.Warn("CHAT", "Session limit reached, serving a transient session", map[string]interface{}{
			"session_id":   sessionID,
			"max_sessions": r.maxSessions,
		})
		return s
	}

	if err := s.Prime(ctx); err != nil {
		r.logger.Warn("CHAT", "Failed to prime chat session, using static persona", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
	r.Save(s)

	r.logger.Info("CHAT", "Chat session created", map[string]interface{}{
		"session_id": sessionID,
		"primed":     s.Primed(),
	})
	return s
}
