package cmd

import (
	"github.com/lwgboy/LibArtNet/internal/monitor"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	decodeCmd = &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a raw ArtPollReply packet dump",
		Long:  "Decode a raw ArtPollReply packet dump",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := monitor.DecodeFile(debug, args[0]); err != nil {
				logrus.Fatalf("failed to decode %v: %v", args[0], err)
			}
		},
	}
)

func init() {
	RootCmd.AddCommand(decodeCmd)
}
