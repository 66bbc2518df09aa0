package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ngthanh/engmaster/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "engmaster",
	Short: "AI English practice for Vietnamese beginners",
	Long:  "EngMaster is an AI-native terminal app that helps Vietnamese beginners practice English with generated worksheets, grading, and spoken feedback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	// Optional .env for API keys and the sheet webhook URL.
	_ = godotenv.Load()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ENGMASTER_DB env var)")
	rootCmd.PersistentFlags().String("topic", "", "Worksheet topic (default: last used, then Greetings)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(gatewayCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ENGMASTER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
