package events

import "time"

const TypeChatAnswered = "chat.answered"

// ChatAnswered is emitted once per handled chat message. It carries only
// routing metadata, never the message or reply text.
type ChatAnswered struct {
	ID         string
	SessionID  string
	Category   string
	StoreID    string
	Degraded   bool
	Latency    time.Duration
	OccurredAt time.Time
}

func (e ChatAnswered) EventType() string {
	return TypeChatAnswered
}

func (e ChatAnswered) Payload() map[string]interface{} {
	return map[string]interface{}{
		"id":         e.ID,
		"session_id": e.SessionID,
		"category":   e.Category,
		"store_id":   e.StoreID,
		"degraded":   e.Degraded,
		"latency_ms": e.Latency.Milliseconds(),
	}
}

func (e ChatAnswered) Timestamp() time.Time {
	return e.OccurredAt
}
