package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// BackendError is returned for any non-2xx backend response
type BackendError struct {
	StatusCode int
	// Detail is the backend-provided message, empty when the body carried none
	Detail string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// newBackendError extracts the optional {"detail": "..."} message from an error body.
// Non-string details (e.g. structured validation reports) are ignored.
func newBackendError(statusCode int, body []byte) *BackendError {
	berr := &BackendError{StatusCode: statusCode}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return berr
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		berr.Detail = strings.TrimSpace(detail)
	}
	return berr
}
