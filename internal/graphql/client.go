// Package graphql is the mediator between the REST layer and the backing
// GraphQL endpoint. It executes documents and hands the raw envelope back;
// interpreting data vs errors is the caller's concern.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Error is one entry of the backend's errors array. Path elements may be
// field names or list indices, so they stay untyped.
type Error struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// Response is the backend envelope. A populated Errors slice is a normal
// result, not a transport failure.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors,omitempty"`
}

// HasErrors reports whether the backend returned a GraphQL errors array.
func (r *Response) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// Client executes GraphQL documents over HTTP. One Client is constructed at
// startup and shared read-only across request goroutines; the embedded
// http.Client owns the connection pool.
type Client struct {
	url  string
	http *http.Client
	log  *zap.Logger
}

// New builds a Client for the given endpoint. A non-positive timeout
// disables the client-side deadline.
func New(url string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// Execute posts the document with its variables and decodes the envelope.
// Variables travel in the request's variables field, never spliced into the
// document text. Network and decode failures return an error; a GraphQL
// errors array does not.
func (c *Client) Execute(ctx context.Context, document string, variables map[string]interface{}) (*Response, error) {
	body, err := json.Marshal(request{Query: document, Variables: variables})
	if err != nil {
		return nil, errors.Wrap(err, "encode graphql request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build graphql request")
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "graphql backend unreachable")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read graphql response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("graphql backend status %d: %s", resp.StatusCode, truncate(raw, 512))
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "decode graphql envelope")
	}

	c.log.Debug("graphql round trip",
		zap.Duration("took", time.Since(start)),
		zap.Int("errors", len(out.Errors)),
	)
	return &out, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return fmt.Sprintf("%s... (%d bytes)", b[:n], len(b))
}
