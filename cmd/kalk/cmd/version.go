package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of kalk",
	Long:  `Print the version number of kalk.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kalk %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
