package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tagger [image]",
	Short: "Draw and tag regions on an image",
	Long: `tagger opens an image and lets you mark rectangles, polygons and points on it.
Committed regions are printed to stdout as JSON, one per line, in image pixels.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runEditor,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $XDG_CONFIG_HOME/tagger/config.toml)")
	flags.String("env", "", "dotenv file with TAGGER_* overrides (default ./.env)")

	rootCmd.Flags().String("mode", "", "initial selection mode: none, point, rect, polygon")
	rootCmd.Flags().String("tag", "", "tag attached to new regions")
	rootCmd.Flags().Bool("debug", false, "start with the debug overlay")
	rootCmd.Flags().String("log-file", "", "append log output to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
