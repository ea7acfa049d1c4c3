package cmd

import (
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/marble-mania/internal"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games over HTTP",
	Long: `Starts an HTTP server with:

  GET /ping                          liveness check
  GET /simulate?players=N&last=N     play one game, JSON result`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("port") {
			conf.HTTPPort = servePort
		}

		return application.RunServer(logger, conf)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "HTTP port (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
