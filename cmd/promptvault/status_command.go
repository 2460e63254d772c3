package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"promptvault/internal/ipc"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a PromptVault instance is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			socketPath, err := ctx.socketPath()
			if err != nil {
				return err
			}

			client, err := ipc.Dial(socketPath)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "PromptVault is not running")
				return nil
			}
			defer client.Close()

			status, err := client.Status()
			if err != nil {
				return fmt.Errorf("query status: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderStatus(status))
			return nil
		},
	}
}

func renderStatus(status *ipc.StatusResponse) string {
	running := "no"
	if status.Running {
		running = "yes"
	}
	rows := [][]string{
		{"Running", running},
		{"PID", strconv.Itoa(status.PID)},
		{"Lock", status.LockPath},
		{"Socket", status.SocketPath},
		{"Events", status.EventAddr},
		{"Subscribers", strconv.Itoa(status.Subscribers)},
	}
	if status.JournalPath != "" {
		rows = append(rows,
			[]string{"Journal", status.JournalPath},
			[]string{"Activations", strconv.FormatInt(status.Activations, 10)})
	}
	return renderTable([]string{"Field", "Value"}, rows)
}
