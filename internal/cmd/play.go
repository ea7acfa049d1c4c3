package cmd

import (
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/marble-mania/internal"
)

var (
	playPlayers    int
	playLastMarble int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single game",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return application.RunPlay(logger, conf, streamsOf(cmd), playPlayers, playLastMarble)
	},
}

func init() {
	playCmd.Flags().IntVarP(&playPlayers, "players", "p", 0, "number of players")
	playCmd.Flags().IntVarP(&playLastMarble, "last", "l", 0, "value of the last marble")
	_ = playCmd.MarkFlagRequired("players")
	_ = playCmd.MarkFlagRequired("last")

	rootCmd.AddCommand(playCmd)
}
