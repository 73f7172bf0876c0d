package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kagent-dev/chatbot-client/jsonrpc"
	"github.com/kagent-dev/chatbot-client/kagent"
)

// Smoke is the single-query smoke test against a running tool server.
type Smoke struct {
	Client *kagent.Client
	Out    io.Writer
}

// Run issues one chatbot_query and prints a pass/fail verdict. It always
// returns nil; the verdict lives in the output.
func (s *Smoke) Run(ctx context.Context) error {
	fmt.Fprintln(s.Out, "🧪 Testing KAgent Chatbot Agent...")

	args := kagent.ChatbotQueryArgs("What's happening with our services?", "3h", 3)
	result, err := s.Client.CallTool(ctx, kagent.ToolChatbotQuery, args)
	if err != nil {
		var rpcErr *jsonrpc.Error
		if errors.As(err, &rpcErr) {
			fmt.Fprintf(s.Out, "❌ Chatbot query failed: %v\n", rpcErr)
			return nil
		}
		fmt.Fprintf(s.Out, "❌ Connection error: %v\n", err)
		fmt.Fprintf(s.Out, "Make sure the MCP server is running on %s\n", s.Client.BaseURL())
		return nil
	}

	text, err := result.FirstText()
	if err != nil {
		fmt.Fprintf(s.Out, "❌ Chatbot query failed: %v\n", err)
		return nil
	}

	fmt.Fprintln(s.Out, "✅ Chatbot query test passed!")
	fmt.Fprintf(s.Out, "Response: %s\n", Truncate(text, ShortPreview))
	return nil
}
