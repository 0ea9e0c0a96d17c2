package main

import (
	"fmt"

	"github.com/aretw0/ordercheck"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ordercheck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ordercheck version %s\n", ordercheck.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
