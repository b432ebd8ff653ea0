package cmd

import (
	"fmt"
	"os"

	"github.com/gnames/ednamap/pkg/ednamap"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf(
			"\nversion: %s\nbuild: %s\n\n",
			ednamap.Version, ednamap.Build,
		)
		os.Exit(0)
	}
}
