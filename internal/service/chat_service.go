package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"jugaad-deals-be/internal/constant"
	"jugaad-deals-be/internal/dto"
	"jugaad-deals-be/internal/pkg/logger"
	"jugaad-deals-be/internal/repository/memory"
	"jugaad-deals-be/pkg/dispatch"
	"jugaad-deals-be/pkg/events"

	"github.com/google/uuid"
)

const chatModule = "CHAT"

var ErrEmptyMessage = errors.New("message must not be empty")

// IChatService answers chat messages and the welcome greeting.
type IChatService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	Greeting(ctx context.Context) *dto.GreetingResponse
}

type chatService struct {
	dispatcher  *dispatch.Dispatcher
	sessionRepo *memory.SessionRepository
	publisher   events.Publisher
	logger      logger.ILogger
}

func NewChatService(
	dispatcher *dispatch.Dispatcher,
	sessionRepo *memory.SessionRepository,
	publisher events.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		dispatcher:  dispatcher,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		logger:      log,
	}
}

func (cs *chatService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	if strings.TrimSpace(request.Message) == "" {
		return nil, ErrEmptyMessage
	}

	sessionID := request.SessionID
	if sessionID == "" {
		sessionID = constant.DefaultSessionID
	}

	start := time.Now()
	reply := cs.dispatcher.DispatchSession(ctx, cs.sessionRepo, sessionID, request.Message)
	latency := time.Since(start)

	cs.logger.Info(chatModule, "Chat message answered", map[string]interface{}{
		"session_id": sessionID,
		"category":   string(reply.Result.Category),
		"store":      reply.StoreID,
		"degraded":   reply.Degraded,
		"latency_ms": latency.Milliseconds(),
	})

	if cs.publisher != nil {
		event := events.ChatAnswered{
			ID:         uuid.NewString(),
			SessionID:  sessionID,
			Category:   string(reply.Result.Category),
			StoreID:    reply.StoreID,
			Degraded:   reply.Degraded,
			Latency:    latency,
			OccurredAt: time.Now(),
		}
		if err := cs.publisher.Publish(ctx, event); err != nil {
			cs.logger.Warn(chatModule, "Failed to publish chat event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.ChatResponse{
		Response:  reply.Text,
		SessionID: sessionID,
	}, nil
}

// Greeting never fails; a recovered fault yields the shorter fallback.
func (cs *chatService) Greeting(_ context.Context) (res *dto.GreetingResponse) {
	defer func() {
		if r := recover(); r != nil {
			cs.logger.Error(chatModule, "Recovered while building greeting", nil)
			res = &dto.GreetingResponse{Greeting: constant.FallbackGreeting}
		}
	}()
	return &dto.GreetingResponse{Greeting: constant.WelcomeGreeting}
}
