package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"portfolio-assistant/internal/session"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Hold a conversation, one message per line",
	Long:  "Reads messages from standard input until EOF or \"exit\". The whole conversation is sent with every message.",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	c, err := newController()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	c.OnChange(newReplyPrinter(out).observe)

	fmt.Fprintln(out, session.Greeting)
	fmt.Fprint(out, "> ")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "exit" || trimmed == "quit" {
			return nil
		}

		c.SetInput(line)
		// Failures already show the apology in the transcript; keep going.
		if err := c.Submit(cmd.Context()); err != nil && !errors.Is(err, session.ErrEmptyMessage) {
			fmt.Fprintf(cmd.ErrOrStderr(), "(%v)\n", err)
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}
