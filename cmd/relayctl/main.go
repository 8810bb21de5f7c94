package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "relayctl",
		Short: "Operator tool for a chat relay",
		Long: `relayctl inspects the relay store and manages accounts.

Examples:
  relayctl inspect --db ./data --prefix channel:
  relayctl create-account --url http://localhost:8080 --username alice --admin`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		inspectCmd(),
		createAccountCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.Red.Sprint("Error:"), err)
		os.Exit(1)
	}
}
