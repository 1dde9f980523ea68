package tiktokdomain

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Response é o envelope comum a todos os endpoints da Business API
type Response struct {
	Code      int                 `json:"code"`
	Message   string              `json:"message"`
	RequestID string              `json:"request_id"`
	Data      jsoniter.RawMessage `json:"data"`
}

// APIError representa uma resposta de falha da API, seja por status HTTP ou por code != 0
type APIError struct {
	HTTPStatus int
	Code       int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("tiktok: %s (status %d, code %d", e.Message, e.HTTPStatus, e.Code)
	if e.RequestID != "" {
		msg += ", request_id " + e.RequestID
	}
	return msg + ")"
}

// IsMethodNotAllowed indica que o endpoint recusou o método HTTP usado
func (e *APIError) IsMethodNotAllowed() bool {
	return e.HTTPStatus == 405
}
