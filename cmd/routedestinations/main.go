package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "routedestinations",
	Short: "Keeps route destinations and process ports in sync",
	Long: `routedestinations maps apps to routes. It stores destinations in redis,
opens the matching ports on each process's Service and keeps the Route
resources consumed by the route controller up to date.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config-dir", "c", "", "directory with config files, each named after its key")
	rootCmd.PersistentFlags().String("apps-file", "", "JSON file mapping app guids to app records (lifecycle and processes), used instead of Cloud Controller")
}
