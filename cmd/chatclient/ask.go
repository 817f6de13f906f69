package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	c, err := newController()
	if err != nil {
		return err
	}
	c.OnChange(newReplyPrinter(cmd.OutOrStdout()).observe)

	// The apology has already been printed when this fails.
	return c.Send(cmd.Context(), strings.Join(args, " "))
}
