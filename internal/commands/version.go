package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the grady version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("grady %s (commit %s, built %s)\n", version, commit, date)
	},
}
