package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/ordercheck/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP classification server",
	Long: `Starts ordercheck as an HTTP server.

Routes:
  POST /classify         words, one per line (or JSON {"words": [...]})
  GET  /classify/{word}  a single word
  GET  /healthz          liveness
  GET  /metrics          Prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		ln, err := net.Listen("tcp", cfg.Serve.Addr)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.RunServe(ctx, ln, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
