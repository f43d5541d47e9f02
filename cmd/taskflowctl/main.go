// Command taskflowctl is the operator CLI: database migrations, user
// provisioning and development access tokens.
//
// Usage:
//
//	taskflowctl migrate up|down|status|version
//	taskflowctl user create --email=ada@example.com --name="Ada"
//	taskflowctl token issue --user=<uuid>
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "taskflowctl",
	Short:         "Operate a taskflow deployment",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.AddCommand(newMigrateCmd(), newUserCmd(), newTokenCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
