// Package main provides a terminal client for the portfolio assistant chat endpoint.
package main

import (
	"fmt"
	"net/http"
	"os"

	"portfolio-assistant/internal/logging"
	"portfolio-assistant/internal/session"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chatclient",
	Short: "Chat with the portfolio assistant from a terminal",
	Long:  "chatclient drives the same conversation state machine as the site's chat widget against a running portfolio service.",
}

var (
	serviceURL string
	streaming  bool
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serviceURL, "url", envOr("PORTFOLIO_URL", "http://localhost:8080"), "Base URL of the portfolio service")
	rootCmd.PersistentFlags().BoolVar(&streaming, "stream", true, "Show the reply as it is generated")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newController builds an open chat session against serviceURL.
func newController() (*session.Controller, error) {
	logger, err := logging.New(logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	c := session.NewController(session.NewHTTPTransport(serviceURL, &http.Client{}), streaming, logger)
	c.Open()
	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
