package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ngthanh/engmaster/internal/identity"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the teacher dashboard (skips login)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, identity.RoleTeacher)
	},
}
