package api

import (
	"encoding/json"
	"errors"
	"io"
	"maps"
	"net/http"
	"slices"
	"strings"
)

var (
	// ErrSessionExpired is returned when a request hit a 401 and the
	// follow-up session refresh failed. Callers should prompt for login.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// genericMessage is used when an error body carries no usable text.
const genericMessage = "request failed"

// APIError is a non-2xx response from the recipe service, normalised to a
// single message. Fields holds the per-field validation messages when the
// body was a field → message(s) map.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string { return e.Message }

// decodeError normalises a non-2xx response body into an *APIError.
//
// The service answers errors in two shapes: a flat {"error": "..."} or
// {"message": "..."} object, or a validation map of field name to a message
// or list of messages. Unparsable bodies are treated as carrying no
// structured error at all.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		raw = nil
	}

	apiErr := &APIError{Status: resp.StatusCode, Message: genericMessage}

	for _, key := range []string{"error", "message"} {
		var s string
		if v, ok := raw[key]; ok && json.Unmarshal(v, &s) == nil && s != "" {
			apiErr.Message = s
			return apiErr
		}
	}

	// Treat the body as a validation map. Keys are sorted so the joined
	// message is stable.
	fields := make(map[string][]string)
	var msgs []string
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		var one string
		var many []string
		switch {
		case json.Unmarshal(raw[key], &one) == nil && one != "":
			fields[key] = []string{one}
		case json.Unmarshal(raw[key], &many) == nil && len(many) > 0:
			fields[key] = many
		default:
			continue
		}
		msgs = append(msgs, fields[key]...)
	}
	if len(msgs) > 0 {
		apiErr.Message = strings.Join(msgs, "; ")
		apiErr.Fields = fields
	}
	return apiErr
}
