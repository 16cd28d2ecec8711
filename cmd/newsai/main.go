// Command newsai is a terminal news dashboard.
//
// Usage:
//
//	newsai                  Launch the dashboard
//	newsai catalog          List the selectable categories
//	newsai config           Print the effective configuration
//	newsai config --init    Write the default config file
//	newsai seed             Write the mock content into the sqlite cache
//	newsai stats            Content cache and event journal statistics
//	newsai events           Event journal viewer
//	newsai version          Print version information
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
