package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import seeders so their init() funcs run and register themselves.
	_ "github.com/shashiranjanraj/plantnet/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "plantnet",
	Short: "plantNet plant marketplace backend",
	Long:  "plantNet serves the marketplace HTTP API: customers, catalog, orders.",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
	rootCmd.AddCommand(seedCmd)
}
