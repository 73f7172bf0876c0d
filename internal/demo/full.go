package demo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kagent-dev/chatbot-client/kagent"
)

// Full is the complete guided walkthrough: health probe, chatbot queries,
// remediation generation, and the intent-recognition loop. Every tool call
// failure prints and execution moves to the next step; only a failed health
// probe aborts the sequence.
type Full struct {
	Client  *kagent.Client
	In      io.Reader
	Out     io.Writer
	Queries []string
}

func (d *Full) queries() []string {
	if len(d.Queries) > 0 {
		return d.Queries
	}
	return DefaultScenarios().Queries
}

// Run executes the demo. It always returns nil: step outcomes are part of
// the printed narration, not the exit status.
func (d *Full) Run(ctx context.Context) error {
	fmt.Fprintln(d.Out, "🚀 Starting KAgent Chatbot Agent Demo")
	fmt.Fprintf(d.Out, "Make sure the MCP server is running on %s\n", d.Client.BaseURL())
	fmt.Fprintln(d.Out, "Press Enter to continue...")
	waitForEnter(d.In)

	if err := d.Client.Health(ctx); err != nil {
		fmt.Fprintln(d.Out, "❌ Cannot connect to MCP server. Is it running?")
		return nil
	}
	fmt.Fprintln(d.Out, "✅ Connected to MCP server")

	d.chatbotQueries(ctx)
	d.remediation(ctx)
	d.intentRecognition(ctx)

	fmt.Fprintln(d.Out, "\n🎉 Demo completed!")
	fmt.Fprintln(d.Out, "\nKey Features Demonstrated:")
	fmt.Fprintln(d.Out, "- Natural language query processing")
	fmt.Fprintln(d.Out, "- Intent recognition and filtering")
	fmt.Fprintln(d.Out, "- Alert data retrieval")
	fmt.Fprintln(d.Out, "- LLM-powered intelligent responses")
	fmt.Fprintln(d.Out, "- Remediation script generation")
	return nil
}

func (d *Full) chatbotQueries(ctx context.Context) {
	fmt.Fprintln(d.Out, "🤖 KAgent Chatbot Agent Demo")
	fmt.Fprintln(d.Out, strings.Repeat("=", 50))

	steps := []struct {
		query     string
		timeRange string
		limit     int
	}{
		{"What's happening with our services?", "3h", 5},
		{"Tell me about pod crashes", "1d", 10},
		{"What critical alerts do we have?", "6h", 3},
	}

	for i, step := range steps {
		fmt.Fprintf(d.Out, "\n%d. Query: '%s'\n", i+1, step.query)
		d.printToolCall(ctx, kagent.ToolChatbotQuery,
			kagent.ChatbotQueryArgs(step.query, step.timeRange, step.limit), 0)
	}
}

func (d *Full) remediation(ctx context.Context) {
	fmt.Fprintln(d.Out, "\n🔧 Remediation Script Demo")
	fmt.Fprintln(d.Out, strings.Repeat("=", 50))

	fmt.Fprintln(d.Out, "\nGenerating remediation script for alert...")
	args := kagent.RemediationArgs("test-crashing-pod-default-1722943743", "test-crashing-pod", "default")

	text, err := d.callTool(ctx, kagent.ToolGetRemediation, args)
	if err != nil {
		fmt.Fprintf(d.Out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(d.Out, "Remediation Script:")
	fmt.Fprintln(d.Out, text)
}

func (d *Full) intentRecognition(ctx context.Context) {
	fmt.Fprintln(d.Out, "\n🧠 Intent Recognition Demo")
	fmt.Fprintln(d.Out, strings.Repeat("=", 50))

	for _, query := range d.queries() {
		fmt.Fprintf(d.Out, "\nQuery: '%s'\n", query)
		d.printToolCall(ctx, kagent.ToolChatbotQuery,
			kagent.ChatbotQueryArgs(query, "3h", 3), ShortPreview)
	}
}

// printToolCall runs one tool call and prints the response text, truncated
// to limit when limit is positive.
func (d *Full) printToolCall(ctx context.Context, tool string, args map[string]interface{}, limit int) {
	text, err := d.callTool(ctx, tool, args)
	if err != nil {
		fmt.Fprintf(d.Out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(d.Out, "Response: %s\n", Truncate(text, limit))
}

func (d *Full) callTool(ctx context.Context, tool string, args map[string]interface{}) (string, error) {
	result, err := d.Client.CallTool(ctx, tool, args)
	if err != nil {
		return "", err
	}
	text, err := result.FirstText()
	if err != nil {
		return "", err
	}
	if result.IsError {
		return "", errors.New(text)
	}
	return text, nil
}

func waitForEnter(in io.Reader) {
	if in == nil {
		return
	}
	_, _ = bufio.NewReader(in).ReadString('\n')
}
