package client

import "fmt"

// Envelope is a loosely-typed response body. When the backend returns
// something that is not valid JSON, the raw text is preserved under "raw"
// instead of surfacing a parse error to the caller.
type Envelope map[string]any

// ServerMessage returns the human-readable message the backend attached to
// the response, preferring "message" over "error". Empty when neither is a
// string.
func (e Envelope) ServerMessage() string {
	for _, key := range []string{"message", "error"} {
		if s, ok := e[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// APIError is the typed failure every gateway call returns on a non-success
// outcome. Status is 0 when no HTTP response was received (transport
// failure or a payload rejected before any network I/O).
type APIError struct {
	Message  string
	Status   int
	Response Envelope
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: %s", e.Message)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}
