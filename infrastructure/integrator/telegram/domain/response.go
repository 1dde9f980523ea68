package telegramdomain

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

const ParseModeMarkdown = "Markdown"

// Response é o envelope da Bot API
type Response struct {
	OK          bool                `json:"ok"`
	Description string              `json:"description,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Result      jsoniter.RawMessage `json:"result,omitempty"`
}

type APIError struct {
	HTTPStatus  int
	ErrorCode   int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram: %s (status %d, error_code %d)", e.Description, e.HTTPStatus, e.ErrorCode)
}
