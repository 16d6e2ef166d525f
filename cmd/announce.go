package cmd

import (
	"github.com/lwgboy/LibArtNet/internal/monitor"
	"github.com/spf13/cobra"
)

var (
	announceCmd = &cobra.Command{
		Use:   "announce",
		Short: "Broadcast the configured node as ArtPollReply packets",
		Long:  "Broadcast the configured node as ArtPollReply packets",
		Run: func(cmd *cobra.Command, args []string) {
			monitor.Announce(debug, config)
		},
	}
)

func init() {
	RootCmd.AddCommand(announceCmd)
}
