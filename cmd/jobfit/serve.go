package main

import (
	"github.com/jonathan/jobfit/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes matching, digest, tracker and resume scoring endpoints.`,
	Args:  cobra.NoArgs,
	RunE:  withApp(runServe),
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string, a *app) error {
	if cmd.Flags().Changed("port") {
		a.cfg.Server.Port = servePort
	}

	jobs, err := a.jobs(cmd)
	if err != nil {
		return err
	}

	srv := server.New(a.cfg, a.stores, jobs, a.log)
	return srv.Run(cmd.Context())
}
