package serverutils

import "jugaad-deals-be/internal/dto"

const (
	MessageInternalError = "Internal server error"
	MessageNoMessage     = "No message provided"
)

func ErrorResponse(message string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: message}
}
