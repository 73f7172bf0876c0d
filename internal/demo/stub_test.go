package demo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// stubServer fakes the tool server: /health answers with a configurable
// status, /jsonrpc answers every tools/call with a fixed body and records
// the calls it saw.
type stubServer struct {
	*httptest.Server

	mu           sync.Mutex
	calls        []stubCall
	healthStatus int
	rpcBody      string
}

type stubCall struct {
	Method string
	Name   string
	Args   map[string]interface{}
}

func newStubServer(t *testing.T, responseText string) *stubServer {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"result": map[string]interface{}{
			"content": []map[string]interface{}{
				{"type": "text", "text": responseText},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	s := &stubServer{
		healthStatus: http.StatusOK,
		rpcBody:      string(body),
	}

	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			s.mu.Lock()
			status := s.healthStatus
			s.mu.Unlock()
			w.WriteHeader(status)
		case "/jsonrpc":
			var req struct {
				Method string `json:"method"`
				Params struct {
					Name      string                 `json:"name"`
					Arguments map[string]interface{} `json:"arguments"`
				} `json:"params"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			s.mu.Lock()
			s.calls = append(s.calls, stubCall{Method: req.Method, Name: req.Params.Name, Args: req.Params.Arguments})
			body := s.rpcBody
			s.mu.Unlock()

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(s.Server.Close)

	return s
}

func (s *stubServer) setHealthStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthStatus = status
}

func (s *stubServer) setRPCBody(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rpcBody = body
}

func (s *stubServer) toolCalls() []stubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]stubCall(nil), s.calls...)
}
