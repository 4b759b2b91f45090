package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Envelope mirrors the API response body.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"request_id"`
}

// ErrorCode returns the error code of a failed response, or "".
func (e Envelope) ErrorCode() string {
	if e.Error == nil {
		return ""
	}
	return e.Error.Code
}

// DecodeData unmarshals the data payload into T.
func DecodeData[T any](t *testing.T, e Envelope) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(e.Data, &v), string(e.Data))
	return v
}

// APIClient talks JSON to a running server.
type APIClient struct {
	t       *testing.T
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a client for the server at baseURL.
func NewAPIClient(t *testing.T, baseURL string) *APIClient {
	return &APIClient{
		t:       t,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Do sends body as JSON (a string is sent verbatim) and decodes the envelope.
func (c *APIClient) Do(method, path string, body any) (int, Envelope) {
	c.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	ctx, cancel := context.WithTimeout(c.t.Context(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	require.NoError(c.t, err)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)

	var env Envelope
	require.NoError(c.t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

// RequireEventually fails the test unless condition holds within timeout.
func RequireEventually(t *testing.T, condition func() bool, timeout, interval time.Duration, msgAndArgs ...any) {
	t.Helper()

	if !WaitForCondition(t, condition, timeout, interval) {
		require.Fail(t, "Condition not met within timeout", msgAndArgs...)
	}
}
