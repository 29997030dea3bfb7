package pixelveil

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pixelveil/pixelveil/internal/config"
	"github.com/pixelveil/pixelveil/internal/key"
)

var (
	cfgOutput    string
	cfgOutputDir string
	cfgLandmarks string
	cfgGlob      string
	cfgNoColor   bool
	cfgNoRecord  bool
	cfgKeyMin    int
	cfgKeyMax    int
	cfgKeyLength int
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .pixelveil.yml with selected options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".pixelveil.yml", "output file path")
	initCmd.Flags().StringVar(&cfgOutputDir, "output-dir", "", "default image output directory")
	initCmd.Flags().StringVar(&cfgLandmarks, "landmarks", "", "default landmark dump path")
	initCmd.Flags().StringVar(&cfgGlob, "glob", "", "default batch glob")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgNoRecord, "no-record", false, "skip region record sidecars by default")
	initCmd.Flags().IntVar(&cfgKeyMin, "key-min", key.DefaultMin, "default minimum for generated keys")
	initCmd.Flags().IntVar(&cfgKeyMax, "key-max", key.DefaultMax, "default maximum for generated keys")
	initCmd.Flags().IntVar(&cfgKeyLength, "key-length", key.DefaultLength, "default length for generated keys")
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	fc := config.FileConfig{
		OutputDir: optStrPtr(cfgOutputDir),
		Landmarks: optStrPtr(cfgLandmarks),
		Glob:      optStrPtr(cfgGlob),
		NoColor:   boolPtr(cfgNoColor),
		NoRecord:  boolPtr(cfgNoRecord),
		KeyMin:    intPtr(cfgKeyMin),
		KeyMax:    intPtr(cfgKeyMax),
		KeyLength: intPtr(cfgKeyLength),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Println("Wrote", cfgOutput)
	return nil
}

func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func boolPtr(v bool) *bool { return &v }
