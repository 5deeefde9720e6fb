package core

import (
	"encoding/json"
	"errors"
	"net/http"
)

// DetailedResponse is the envelope returned by every operation: the status
// code and headers of the final HTTP response, plus its payload.
//
// Result holds the decoded JSON value (map[string]any, []any, ...) or, for
// non-JSON payloads, the body as a string. RawResult keeps the bytes as
// received so callers can decode into their own types with Decode.
type DetailedResponse struct {
	StatusCode int
	Headers    http.Header
	Result     any
	RawResult  []byte
}

// GetStatusCode returns the HTTP status code.
func (r *DetailedResponse) GetStatusCode() int {
	return r.StatusCode
}

// GetHeaders returns the response headers.
func (r *DetailedResponse) GetHeaders() http.Header {
	return r.Headers
}

// GetResultAsMap returns Result as a JSON object, if it is one.
func (r *DetailedResponse) GetResultAsMap() (map[string]any, bool) {
	m, ok := r.Result.(map[string]any)
	return m, ok
}

// Decode unmarshals the raw JSON payload into v.
func (r *DetailedResponse) Decode(v any) error {
	if len(r.RawResult) == 0 {
		return errors.New("response has no payload")
	}
	return json.Unmarshal(r.RawResult, v)
}
