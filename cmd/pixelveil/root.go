package pixelveil

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagNoColor       bool
	flagOutputDir     string
	flagNoUpdateCheck bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the Pixelveil CLI.
var rootCmd = &cobra.Command{
	Use:           "pixelveil",
	Short:         "Scramble faces in images with a numeric key",
	Long:          "Pixelveil scrambles the face region of an image by key-driven row permutation and restores it with the same key. Detection happens outside; Pixelveil consumes the detector's landmark dump.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the Pixelveil CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVarP(&flagOutputDir, "output", "o", "", "image files output directory (default: next to the source)")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}
