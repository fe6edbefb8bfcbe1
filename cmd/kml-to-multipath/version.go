package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of kml-to-multipath",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kml-to-multipath %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
