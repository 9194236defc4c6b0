package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// flagConfig holds the path given with --config. Empty means the default
// lookup in the working directory.
var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "streakfinder",
	Short: "Detect streaks in astronomical images",
	Long: `streakfinder finds trails left by fast-moving objects in astronomical
images. It estimates the sky background, traces brightness contours above it,
keeps the elongated ones and links collinear fragments into streaks.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"config file (default: streakfinder.yaml in the working directory)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(detectCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("streakfinder %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	},
}
