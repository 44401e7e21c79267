package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"realestate-seed/internal/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "realestate-seed",
		Short:         "Synthetic real-estate dataset generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		commands.GenerateCmd(),
		commands.ExportCmd(),
		commands.VerifyCmd(),
		commands.StatusCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
