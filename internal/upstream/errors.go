package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// FallbackMessage is shown when the external API gives no usable error message.
const FallbackMessage = "حدث خطأ غير متوقع، يرجى المحاولة لاحقاً"

var (
	// ErrEmptyQuery rejects blank searches before any network call.
	ErrEmptyQuery = errors.New("upstream: search query is empty")
	// ErrTimeoutRequired is returned by NewClient when no outbound timeout is configured.
	ErrTimeoutRequired = errors.New("upstream: timeout must be positive")
)

// UpstreamError is a non-2xx answer from the external API.
type UpstreamError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: status %d: %s", e.Endpoint, e.Status, e.Message)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var uErr *UpstreamError
	if errors.As(err, &uErr) {
		return uErr, true
	}
	return nil, false
}

// messageFromBody pulls a human-readable message out of a JSON error body.
func messageFromBody(raw []byte) string {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return FallbackMessage
	}
	for _, key := range []string{"error", "message"} {
		field, ok := body[key]
		if !ok {
			continue
		}
		var msg string
		if err := json.Unmarshal(field, &msg); err == nil && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	return FallbackMessage
}
