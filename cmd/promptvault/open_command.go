package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"promptvault/internal/deeplink"
	"promptvault/internal/ipc"
)

func newOpenCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Forward a promptvault:// URL to the running instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			if !deeplink.MatchesScheme(url) {
				return fmt.Errorf("url must start with %s", deeplink.Scheme)
			}

			socketPath, err := ctx.socketPath()
			if err != nil {
				return err
			}

			client, err := ipc.Dial(socketPath)
			if err != nil {
				return fmt.Errorf("PromptVault is not running; launch it with: promptvault %q", url)
			}
			defer client.Close()

			cwd, _ := os.Getwd()
			resp, err := client.Forward(ipc.ForwardRequest{
				Args:       []string{os.Args[0], url},
				WorkingDir: cwd,
			})
			if err != nil {
				return fmt.Errorf("forward url: %w", err)
			}
			if !resp.Matched {
				return fmt.Errorf("running instance rejected url %q", url)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Forwarded to running instance")
			return nil
		},
	}
}
