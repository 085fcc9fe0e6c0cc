package restclient

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// NetworkError reports a request that never produced a usable response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError reports a non-2xx response. Message carries the server-supplied
// explanation when the body contained one.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return "server returned status " + strconv.Itoa(e.Status)
}

// ParseError reports a 2xx response whose body did not decode.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "decode response: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newServerError(status int, payload []byte) *ServerError {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &parsed); err == nil && strings.TrimSpace(parsed.Message) != "" {
		return &ServerError{Status: status, Message: parsed.Message}
	}

	return &ServerError{Status: status}
}

// Message extracts the server-supplied explanation from err, falling back to
// the given text for every other failure kind.
func Message(err error, fallback string) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) && serverErr.Message != "" {
		return serverErr.Message
	}

	return fallback
}
