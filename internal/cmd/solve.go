package cmd

import (
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/marble-mania/internal"
)

var (
	solveInput      string
	solveMultiplier int
	solveBar        bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the puzzle input file",
	Long: `Reads a line like "10 players; last marble is worth 1618 points" and
prints the winning score of that game and of the game with the last marble
multiplied (100 by default).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("input") {
			conf.InputPath = solveInput
		}
		if cmd.Flags().Changed("multiplier") {
			conf.Simulation.Multiplier = solveMultiplier
		}
		if cmd.Flags().Changed("progress-bar") {
			conf.Simulation.ProgressBar = solveBar
		}

		return application.RunSolve(logger, conf, streamsOf(cmd))
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "puzzle input file (overrides config)")
	solveCmd.Flags().IntVarP(&solveMultiplier, "multiplier", "m", 0, "last marble multiplier for the second answer (overrides config)")
	solveCmd.Flags().BoolVar(&solveBar, "progress-bar", false, "draw a progress bar instead of logging progress")

	rootCmd.AddCommand(solveCmd)
}
