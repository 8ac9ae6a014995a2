package cmd

import (
	"fmt"

	"github.com/ealmiron/gowind/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gowind",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gowind v%s\n", version.Version)
		fmt.Println("Wind Load Calculation Tool")
		fmt.Println("Based on CIRSOC 102-2005 (Argentine wind loading code)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
