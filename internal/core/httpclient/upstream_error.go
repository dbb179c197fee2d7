package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// UpstreamError carries a business-rule failure reported by the platform API.
// The message is passed through to the caller verbatim.
type UpstreamError struct {
	// StatusCode is the HTTP status returned by the upstream.
	StatusCode int
	// Message is the upstream-provided error description.
	Message string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// IsNotFound reports whether the upstream signalled a missing resource.
func (e *UpstreamError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// upstreamErrorBody matches the platform API error envelope.
type upstreamErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ErrorFromResponse builds an UpstreamError from a non-2xx response body.
// It tolerates empty or non-JSON bodies.
func ErrorFromResponse(resp *http.Response) *UpstreamError {
	ue := &UpstreamError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil || len(body) == 0 {
		return ue
	}

	var parsed upstreamErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ue
	}

	if parsed.Message != "" {
		ue.Message = parsed.Message
	} else {
		ue.Message = parsed.Error
	}
	return ue
}

// AsUpstreamError unwraps err into an UpstreamError if possible.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
