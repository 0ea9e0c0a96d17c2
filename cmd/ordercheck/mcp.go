package main

import (
	"github.com/aretw0/ordercheck/pkg/adapters/mcp"
	"github.com/aretw0/ordercheck/pkg/observability"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server over stdio",
	Long: `Starts ordercheck as an MCP server on standard input/output, exposing the
classify_words and classify_word tools to AI agents.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		logger.Info("Starting ordercheck MCP Server (Stdio)...")
		return mcp.NewServer(observability.NewMetrics(), logger).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
