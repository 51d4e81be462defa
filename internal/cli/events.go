package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recent camera events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := newClient().Events(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch events: %w", err)
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), events)
		}
		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No events.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), eventTable(events))
		return nil
	},
}

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print the server's recent log lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := newClient().Logs(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch logs: %w", err)
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), map[string][]string{"logs": lines})
		}
		for _, l := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), l)
		}
		return nil
	},
}
