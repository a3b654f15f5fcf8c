package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "skel",
		Short: "A toasty toolchain for sketch notation",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newExpandCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
