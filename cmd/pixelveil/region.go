package pixelveil

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pixelveil/pixelveil/internal/landmarks"
	"github.com/pixelveil/pixelveil/internal/region"
	"github.com/pixelveil/pixelveil/internal/report"
)

var flagRegionLandmarks string

func init() {
	cmd := &cobra.Command{
		Use:   "region",
		Short: "Derive the bounding box from a landmark dump",
		Long:  "Region computes the row/column extrema of a detector's landmark dump, the same box scramble will operate on. An empty dump is reported as an error: no face, no region.",
		RunE:  runRegion,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagRegionLandmarks, "landmarks", "l", "", "landmark dump (JSON) from the external detector")
	_ = cmd.MarkFlagRequired("landmarks")
}

func runRegion(_ *cobra.Command, _ []string) error {
	set, err := landmarks.Load(flagRegionLandmarks)
	if err != nil {
		return err
	}
	box, err := region.FromLandmarks(set)
	if err != nil {
		return err
	}
	if flagJSON {
		return report.WriteJSON(os.Stdout, box)
	}
	return report.PrintRegion(os.Stdout, box)
}
