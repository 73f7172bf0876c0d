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
	Use:   "chatbot-timestamps",
	Short: "Checks the enhanced timestamp fields in chatbot responses",
	Long: `chatbot-timestamps queries the chatbot for recent alerts and
verifies the response carries the enhanced timestamp labels (Created:,
Updated:, Collected:). The full response preview is printed for inspection.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		g, ctx := errgroup.WithContext(ctx)

		logger := opts.NewLogger()
		client := opts.NewClient(logger)

		g.Go(func() error {
			t := &demo.Timestamps{Client: client, Out: os.Stdout}
			return t.Run(ctx)
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
