// Package client is the typed wrapper around the KitchPad REST backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "http://localhost:8080/api"

type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// New builds a client against baseURL. An empty baseURL falls back to
// KITCHPAD_API_URL, then to the local development default.
func New(baseURL string, log *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("KITCHPAD_API_URL")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if log == nil {
		log = logrus.New()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

// APIError is any non-2xx response, with the message parsed from the
// error body when the backend sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// do sends one request and decodes the response into out (which may be
// nil). GETs are retried once on transport failure or a 5xx; writes are
// never retried.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts = 2
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			c.log.Warnf("retrying %s %s: %v", method, path, lastErr)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		err = decode(resp, out)
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode >= 500 && i+1 < attempts {
			lastErr = err
			continue
		}
		return err
	}
	return lastErr
}

func decode(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.Unmarshal(data, out)
}

func errorMessage(status int, body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return fmt.Sprintf("API Error: status %d", status)
}
