// Package testkit holds helpers for exercising HTTP controllers in
// tests: building JSON requests, decoding the response envelope, and
// asserting on it with testify.
package testkit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the JSON response shape every controller writes.
type Envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

// JSONRequest builds a request with body marshalled to JSON.
// A nil body produces an empty-body request.
func JSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Do runs the request through handler and returns the recorder.
func Do(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// DecodeEnvelope parses the recorded body into an Envelope.
func DecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env),
		"response is not valid JSON\nbody: %s", rec.Body.String())
	return env
}

// AssertSuccess asserts the response code plus success=true, then decodes
// env.Data into out when out is non-nil.
func AssertSuccess(t *testing.T, rec *httptest.ResponseRecorder, wantCode int, out interface{}) Envelope {
	t.Helper()

	assert.Equal(t, wantCode, rec.Code, "HTTP status code mismatch\nbody: %s", rec.Body.String())
	env := DecodeEnvelope(t, rec)
	assert.True(t, env.Success, "expected success envelope, got: %s", rec.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

// AssertError asserts the response code plus success=false.
func AssertError(t *testing.T, rec *httptest.ResponseRecorder, wantCode int) Envelope {
	t.Helper()

	assert.Equal(t, wantCode, rec.Code, "HTTP status code mismatch\nbody: %s", rec.Body.String())
	env := DecodeEnvelope(t, rec)
	assert.False(t, env.Success, "expected error envelope, got: %s", rec.Body.String())
	return env
}
