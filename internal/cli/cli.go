// Package cli carries the flag surface and client construction shared by
// the demo binaries.
package cli

import (
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kagent-dev/chatbot-client/internal/config"
	"github.com/kagent-dev/chatbot-client/kagent"
)

// Options are the common knobs of every binary. Defaults come from the
// environment so a zero-flag run matches the original scripts.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Retries int
	Verbose bool
}

// DefaultOptions builds Options from the environment (.env aware).
func DefaultOptions() *Options {
	cfg := config.Load()
	return &Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Retries: cfg.Retries,
	}
}

// Bind registers the shared flags on a command.
func (o *Options) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.BaseURL, "base-url", o.BaseURL, "Base URL of the kagent tool server")
	cmd.Flags().DurationVar(&o.Timeout, "timeout", o.Timeout, "HTTP request timeout")
	cmd.Flags().IntVar(&o.Retries, "retries", o.Retries, "Maximum number of retries for failed requests")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false, "Enable verbose logging to stderr")
}

// NewLogger builds the stderr diagnostic logger. Narration goes to stdout
// separately, so anything below warning stays quiet unless --verbose is set.
func (o *Options) NewLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if o.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logrus.NewEntry(logger)
}

// NewClient builds the tool-server client. Retries default to zero; the
// demos are strictly sequential single attempts unless asked otherwise.
func (o *Options) NewClient(logger *logrus.Entry) *kagent.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = o.Retries
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 30 * time.Second
	retryClient.HTTPClient.Timeout = o.Timeout
	retryClient.Logger = logger

	return kagent.NewClient(o.BaseURL,
		kagent.WithHTTPClient(retryClient.StandardClient()),
		kagent.WithLogger(logger),
	)
}
