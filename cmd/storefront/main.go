// Package main implements the storefront CLI: a terminal client for a demo
// product catalog service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Browse a demo product catalog from the terminal",
	Long: "storefront is a terminal client for a demo product catalog service: " +
		"sign in, browse and search products, build a cart, and create or hide items.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the interactive browser
		return browseCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("storefront %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(browseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
