package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ngthanh/engmaster/internal/identity"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice worksheet (skips login)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, identity.RoleStudent)
	},
}
