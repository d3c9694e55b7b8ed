package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dealflow",
	Short: "Relationship tracking for an investment pipeline",
	Long:  "Dealflow tracks pipeline contacts, flags stale relationships, and proposes follow-up actions. Single Go binary, SQLite storage.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(statsCmd)
}
