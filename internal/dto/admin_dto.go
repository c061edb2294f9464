package dto

import "jugaad-deals-be/internal/pkg/logger"

type StatsResponse struct {
	Total          int64            `json:"total"`
	Degraded       int64            `json:"degraded"`
	Categories     map[string]int64 `json:"categories"`
	Stores         map[string]int64 `json:"stores"`
	ActiveSessions int              `json:"active_sessions"`
	Backend        string           `json:"backend"`
}

type LogListRequest struct {
	Level  string `query:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

type LogListResponse struct {
	Logs   []logger.LogEntry `json:"logs"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
