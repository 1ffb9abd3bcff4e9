package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
)

// ErrMalformedResponse is returned when a 2xx response does not carry the
// expected object.
var ErrMalformedResponse = errors.New("malformed response")

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mediguard api error: %s - %s", e.Status, e.Body)
}

// Client talks to the MediGuard REST backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		jsonBody, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// do sends req, fails on any non-2xx status and decodes the body into out
// when out is non-nil.
func (c *Client) do(req *http.Request, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	ctx := log.WithFields(log.Fields{
		"method":     req.Method,
		"path":       req.URL.Path,
		"request_id": requestID,
	})
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		ctx.WithError(err).Warn("request failed")
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	ctx.WithFields(log.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(respBody),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
