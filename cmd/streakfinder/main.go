// Package main provides the streakfinder CLI.
package main

import (
	"fmt"
	"log"
	"os"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Diagnostics go to stderr; stdout carries results only.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("STREAKFINDER_LOG_LEVEL") == "debug" {
		log.Printf("streakfinder v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
