package kagent

// Tool names registered by the kagent tool server.
const (
	ToolChatbotQuery   = "chatbot_query"
	ToolGetRemediation = "get_remediation"
)

// ToolCallParams represents the parameters for the tools/call method
type ToolCallParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// Content is one block of a tool result. The chatbot server only ever
// returns text blocks, but the type tag is kept so other block kinds fail
// loudly instead of silently decoding into an empty text.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// CallToolResult represents the server's response to a tool call
type CallToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// ChatbotQueryArgs builds the argument mapping for the chatbot_query tool.
// timeRange uses the server's shorthand ("3h", "1d", "6h", ...).
func ChatbotQueryArgs(query, timeRange string, limit int) map[string]interface{} {
	return map[string]interface{}{
		"query":     query,
		"timeRange": timeRange,
		"limit":     limit,
	}
}

// RemediationArgs builds the argument mapping for the get_remediation tool.
func RemediationArgs(alertID, service, namespace string) map[string]interface{} {
	return map[string]interface{}{
		"alertId":   alertID,
		"service":   service,
		"namespace": namespace,
	}
}
