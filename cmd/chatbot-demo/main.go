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

var (
	opts      = cli.DefaultOptions()
	scenarios string
)

var rootCmd = &cobra.Command{
	Use:   "chatbot-demo",
	Short: "Guided demo of the KAgent chatbot agent",
	Long: `chatbot-demo walks through the KAgent chatbot agent end to end:
it probes the tool server's health endpoint, runs a set of natural-language
queries through the chatbot_query tool, generates a remediation script with
get_remediation, and finishes with an intent-recognition walkthrough.

All responses are printed to stdout for inspection. The demo waits for a
keypress before starting so a server can be brought up first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		g, ctx := errgroup.WithContext(ctx)

		logger := opts.NewLogger()
		client := opts.NewClient(logger)

		s, err := demo.LoadScenarios(scenarios)
		if err != nil {
			return err
		}

		g.Go(func() error {
			d := &demo.Full{
				Client:  client,
				In:      os.Stdin,
				Out:     os.Stdout,
				Queries: s.Queries,
			}
			return d.Run(ctx)
		})

		return g.Wait()
	},
}

func init() {
	opts.Bind(rootCmd)
	rootCmd.Flags().StringVar(&scenarios, "scenarios", "", "YAML file with intent walkthrough queries (built-in list when omitted)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
