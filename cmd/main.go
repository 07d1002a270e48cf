// Package main provides the CLI entry point for the endpoint log analyzer.
// It reads JSON access logs and prints the average response time per endpoint.
package main

import (
	"fmt"
	"os"

	"log-analyzer/internal/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()

	// Execute the root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
