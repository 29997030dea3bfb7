package pixelveil

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pixelveil/pixelveil/internal/update"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update pixelveil to the latest release",
		RunE: func(_ *cobra.Command, _ []string) error {
			if latest, newer, _ := update.Check(version, false); !newer {
				fmt.Fprintf(os.Stderr, "already up to date (v%s)\n", version)
				return nil
			} else if latest != "" {
				fmt.Fprintf(os.Stderr, "updating to v%s...\n", latest)
			}
			if err := selfUpdate(); err != nil {
				return fmt.Errorf("self-update: %w", err)
			}
			fmt.Fprintln(os.Stderr, "updated; re-run your command")
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
