package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kagent-dev/chatbot-client/internal/cli"
	"github.com/kagent-dev/chatbot-client/internal/demo"
)

var opts = cli.DefaultOptions()

var rootCmd = &cobra.Command{
	Use:   "chatbot-smoke",
	Short: "Single-query smoke test for the KAgent chatbot agent",
	Long: `chatbot-smoke issues one chatbot_query against a running tool
server and prints a pass/fail verdict. Useful as a quick check that the
server is up and the chatbot pipeline answers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		g, ctx := errgroup.WithContext(ctx)

		logger := opts.NewLogger()
		client := opts.NewClient(logger)

		g.Go(func() error {
			s := &demo.Smoke{Client: client, Out: os.Stdout}
			return s.Run(ctx)
		})

		return g.Wait()
	},
}

func init() {
	opts.Bind(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
