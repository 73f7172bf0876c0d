package jsonrpc

import "encoding/json"

// Response represents a JSON-RPC response object. Result is kept raw so
// callers can decode it into whatever shape the method returns.
type Response struct {
	Version string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
	ID      ID              `json:"id"`
}
