// FILE: internal/service/stats_service.go
// PURPOSE: Consume chat.answered events from the bus and keep per-category and
//          per-store counters for the admin dashboard.
package service

import (
	"context"
	"encoding/json"

	"jugaad-deals-be/internal/dto"
	"jugaad-deals-be/internal/pkg/logger"
	"jugaad-deals-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

const statsModule = "STATS"

type IStatsService interface {
	Consume(ctx context.Context) error
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

// SessionCounter reports how many chat sessions are alive.
type SessionCounter interface {
	Count() int
}

type statsService struct {
	subscriber message.Subscriber
	topicName  string
	counter    StatsCounter
	sessions   SessionCounter
	logger     logger.ILogger
}

func NewStatsService(
	subscriber message.Subscriber,
	topicName string,
	counter StatsCounter,
	sessions SessionCounter,
	log logger.ILogger,
) IStatsService {
	return &statsService{
		subscriber: subscriber,
		topicName:  topicName,
		counter:    counter,
		sessions:   sessions,
		logger:     log,
	}
}

func (s *statsService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *statsService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope eventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		s.logger.Error(statsModule, "Failed to unmarshal event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if envelope.Type != events.TypeChatAnswered {
		msg.Ack()
		return
	}

	fields := []string{fieldTotal}
	if category, _ := envelope.Data["category"].(string); category != "" {
		fields = append(fields, prefixCategory+category)
	}
	if store, _ := envelope.Data["store_id"].(string); store != "" {
		fields = append(fields, prefixStore+store)
	}
	if degraded, _ := envelope.Data["degraded"].(bool); degraded {
		fields = append(fields, fieldDegraded)
	}

	for _, field := range fields {
		if err := s.counter.Incr(ctx, field); err != nil {
			s.logger.Warn(statsModule, "Failed to increment counter", map[string]interface{}{
				"field":   field,
				"backend": s.counter.Backend(),
				"error":   err.Error(),
			})
		}
	}

	msg.Ack()
}

func (s *statsService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	all, err := s.counter.All(ctx)
	if err != nil {
		return nil, err
	}

	categories, stores := splitCounters(all)
	res := &dto.StatsResponse{
		Total:      all[fieldTotal],
		Degraded:   all[fieldDegraded],
		Categories: categories,
		Stores:     stores,
		Backend:    s.counter.Backend(),
	}
	if s.sessions != nil {
		res.ActiveSessions = s.sessions.Count()
	}
	return res, nil
}
