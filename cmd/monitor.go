package cmd

import (
	"github.com/lwgboy/LibArtNet/internal/monitor"
	"github.com/spf13/cobra"
)

var (
	monitorCmd = &cobra.Command{
		Use:   "monitor",
		Short: "Listen for ArtPollReply packets and report discovered nodes",
		Long:  "Listen for ArtPollReply packets and report discovered nodes",
		Run: func(cmd *cobra.Command, args []string) {
			monitor.Start(debug, config)
		},
	}
)

func init() {
	RootCmd.AddCommand(monitorCmd)
}
