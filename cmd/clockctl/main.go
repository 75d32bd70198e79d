package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	keyFlag string
	rootCmd = &cobra.Command{
		Use:   "clockctl",
		Short: "CLI client for the timesheet service REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Timesheet service base URL")
	rootCmd.PersistentFlags().StringVarP(&keyFlag, "key", "k", "", "API key (sent as bearer token when set)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
