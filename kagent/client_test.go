package kagent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallToolEnvelope(t *testing.T) {
	var captured struct {
		JSONRPC string `json:"jsonrpc"`
		Method  string `json:"method"`
		Params  struct {
			Name      string                 `json:"name"`
			Arguments map[string]interface{} `json:"arguments"`
		} `json:"params"`
		ID int `json:"id"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/jsonrpc", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Session-Id"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","result":{"content":[{"type":"text","text":"ok"}]},"id":1}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	args := ChatbotQueryArgs("What's happening with our services?", "3h", 5)
	result, err := client.CallTool(context.Background(), ToolChatbotQuery, args)
	require.NoError(t, err)

	assert.Equal(t, "2.0", captured.JSONRPC)
	assert.Equal(t, "tools/call", captured.Method)
	assert.Equal(t, "chatbot_query", captured.Params.Name)
	assert.Equal(t, "What's happening with our services?", captured.Params.Arguments["query"])
	assert.Equal(t, "3h", captured.Params.Arguments["timeRange"])
	assert.Equal(t, float64(5), captured.Params.Arguments["limit"])
	assert.Equal(t, 1, captured.ID)

	text, err := result.FirstText()
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestCallToolRequestIDsIncrement(t *testing.T) {
	var ids []int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID int `json:"id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		ids = append(ids, req.ID)
		w.Write([]byte(`{"jsonrpc":"2.0","result":{"content":[{"type":"text","text":"ok"}]},"id":1}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL)
	for i := 0; i < 3; i++ {
		_, err := client.CallTool(context.Background(), ToolChatbotQuery, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestCallToolErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantInErr  string
		wantNoText bool
	}{
		{
			name:      "bare string error member",
			status:    http.StatusOK,
			body:      `{"jsonrpc":"2.0","error":"boom","id":1}`,
			wantInErr: "boom",
		},
		{
			name:      "structured error member",
			status:    http.StatusOK,
			body:      `{"jsonrpc":"2.0","error":{"code":-32601,"message":"Method not found"},"id":1}`,
			wantInErr: "Method not found",
		},
		{
			name:      "http error status",
			status:    http.StatusInternalServerError,
			body:      `{}`,
			wantInErr: "status 500",
		},
		{
			name:      "empty response",
			status:    http.StatusOK,
			body:      `{"jsonrpc":"2.0","id":1}`,
			wantInErr: "neither result nor error",
		},
		{
			name:      "invalid json body",
			status:    http.StatusOK,
			body:      `{not json`,
			wantInErr: "decode response",
		},
		{
			name:       "result without content",
			status:     http.StatusOK,
			body:       `{"jsonrpc":"2.0","result":{"content":[]},"id":1}`,
			wantNoText: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			client := NewClient(ts.URL)
			result, err := client.CallTool(context.Background(), ToolChatbotQuery, nil)

			if tt.wantNoText {
				require.NoError(t, err)
				_, err := result.FirstText()
				assert.ErrorIs(t, err, ErrNoTextContent)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantInErr)
		})
	}
}

func TestCallToolUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := NewClient(ts.URL)
	_, err := client.CallTool(context.Background(), ToolChatbotQuery, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "call tool chatbot_query")
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "healthy", status: http.StatusOK},
		{name: "unhealthy", status: http.StatusServiceUnavailable, wantErr: true},
		{name: "not found", status: http.StatusNotFound, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			err := NewClient(ts.URL).Health(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("unreachable", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ts.Close()
		assert.Error(t, NewClient(ts.URL).Health(context.Background()))
	})
}

func TestRemediationArgs(t *testing.T) {
	args := RemediationArgs("test-crashing-pod-default-1722943743", "test-crashing-pod", "default")
	assert.Equal(t, map[string]interface{}{
		"alertId":   "test-crashing-pod-default-1722943743",
		"service":   "test-crashing-pod",
		"namespace": "default",
	}, args)
}
