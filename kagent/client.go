package kagent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kagent-dev/chatbot-client/jsonrpc"
)

// DefaultBaseURL is where the kagent tool server listens when run locally.
const DefaultBaseURL = "http://localhost:8084"

// ErrNoTextContent is returned when a tool result carries no usable text
// block. The server always returns at least one for the chatbot tools, so
// hitting this means the response was malformed.
var ErrNoTextContent = errors.New("tool result contains no text content")

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for all requests
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithLogger sets the logger for diagnostic output
func WithLogger(logger *logrus.Entry) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client issues JSON-RPC tool calls to the kagent chatbot tool server over
// HTTP. All calls are synchronous round trips; the zero retry policy of the
// underlying HTTP client is the caller's choice.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Entry
	session string
	counter uint64
}

// NewClient builds a client for the tool server at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		session: uuid.NewString(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: 30 * time.Second}
	}
	if c.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.logger = logrus.NewEntry(l)
	}

	// Stamp every request with the session id without touching the
	// caller's client.
	hc := *c.client
	hc.Transport = &HeaderTransport{
		Base: c.client.Transport,
		Headers: http.Header{
			"User-Agent":   []string{"kagent-chatbot-client"},
			"X-Session-Id": []string{c.session},
		},
	}
	c.client = &hc

	c.logger = c.logger.WithField("session", c.session)

	return c
}

// BaseURL returns the server address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) nextID() uint64 {
	return atomic.AddUint64(&c.counter, 1)
}

// Health probes GET /health and returns nil only on HTTP 200.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("health probe: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health probe returned status %d", resp.StatusCode)
	}
	return nil
}

// CallTool invokes a named tool with the given arguments and returns the
// decoded result. A JSON-RPC error member comes back as the returned error.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]interface{}) (*CallToolResult, error) {
	params, err := json.Marshal(ToolCallParams{Name: name, Arguments: args})
	if err != nil {
		return nil, fmt.Errorf("encode params: %w", err)
	}

	payload, err := json.Marshal(jsonrpc.NewRequest("tools/call", params, c.nextID()))
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/jsonrpc", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call tool %s: %w", name, err)
	}
	defer httpResp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"tool":     name,
		"status":   httpResp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond),
	}).Debug("tools/call round trip")

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, fmt.Errorf("tool server returned status %d", httpResp.StatusCode)
	}

	var resp jsonrpc.Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.Error != nil {
		return nil, resp.Error
	}
	if len(resp.Result) == 0 {
		return nil, fmt.Errorf("response for tool %s has neither result nor error", name)
	}

	var result CallToolResult
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		return nil, fmt.Errorf("decode tool result: %w", err)
	}
	return &result, nil
}

// FirstText returns the text of the first text block in the result, or
// ErrNoTextContent when the result is malformed.
func (r *CallToolResult) FirstText() (string, error) {
	for _, block := range r.Content {
		if block.Type == "text" || block.Type == "" {
			return block.Text, nil
		}
	}
	return "", ErrNoTextContent
}
