package pixelveil

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelveil/pixelveil/internal/imageio"
	"github.com/pixelveil/pixelveil/internal/permute"
	"github.com/pixelveil/pixelveil/internal/pixgrid"
	"github.com/pixelveil/pixelveil/internal/record"
	"github.com/pixelveil/pixelveil/internal/region"
	"github.com/pixelveil/pixelveil/internal/report"
)

var (
	flagUnsKey    string
	flagUnsRecord string
	flagUnsTop    int
	flagUnsBottom int
	flagUnsLeft   int
	flagUnsRight  int
)

func init() {
	cmd := &cobra.Command{
		Use:   "unscramble IMAGE",
		Short: "Restore a scrambled face region",
		Long: "Unscramble replays the scramble's swap chain in reverse. It needs the exact key and region the scramble used: " +
			"pass the region record sidecar (default: next to IMAGE) or the four coordinates explicitly. " +
			"A wrong key or region produces garbage without an error; the record's digest only allows an after-the-fact warning.",
		Args: cobra.ExactArgs(1),
		RunE: runUnscramble,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagUnsKey, "key", "k", "", "comma-separated key values used to scramble")
	cmd.Flags().StringVar(&flagUnsRecord, "record", "", "region record written at scramble time (default: <IMAGE>.region.json)")
	cmd.Flags().IntVar(&flagUnsTop, "top", 0, "upmost row of the scrambled region")
	cmd.Flags().IntVar(&flagUnsBottom, "bottom", 0, "bottommost row of the scrambled region")
	cmd.Flags().IntVar(&flagUnsLeft, "left", 0, "leftmost column of the scrambled region")
	cmd.Flags().IntVar(&flagUnsRight, "right", 0, "rightmost column of the scrambled region")
}

func runUnscramble(cmd *cobra.Command, args []string) error {
	lcfg, gcfg := loadConfigs()
	start := time.Now()

	userKey, err := userKeyFromFlag(flagUnsKey)
	if err != nil {
		return err
	}
	outDir := pickString(flagOutputDir, lcfg.OutputDir, gcfg.OutputDir)
	if err := checkOutputDir(outDir); err != nil {
		return err
	}
	noColor := colorDisabled(pickBool(false, lcfg.NoColor, gcfg.NoColor))

	box, rec, err := resolveRegion(cmd, args[0])
	if err != nil {
		return err
	}

	img, err := imageio.Decode(args[0])
	if err != nil {
		return err
	}
	grid := pixgrid.FromImage(img)
	if err := (permute.KeyBased{}).Unscramble(grid, box, userKey); err != nil {
		return err
	}

	out := imageio.UnscrambledPath(args[0], outDir)
	if err := imageio.Encode(out, grid.Image()); err != nil {
		return err
	}

	s := report.Summary{
		Operation: "unscramble",
		Image:     args[0],
		Output:    out,
		Region:    box,
		KeyLength: userKey.Len(),
		Duration:  time.Since(start),
	}
	if rec != nil && rec.RegionDigest != "" {
		if want, err := record.ParseDigest(rec.RegionDigest); err == nil {
			restored := grid.RegionDigest(box) == want
			s.Restored = &restored
		}
	}

	if flagJSON {
		return report.WriteJSON(os.Stdout, []report.Summary{s})
	}
	report.PrintText(os.Stdout, []report.Summary{s}, report.PrintOptions{NoColor: noColor})
	return nil
}

// resolveRegion picks the region source: explicit coordinates when any of
// the four flags is set (then all four are required), otherwise a record
// sidecar. The returned record is nil in the explicit case.
func resolveRegion(cmd *cobra.Command, imagePath string) (region.Box, *record.Record, error) {
	changed := 0
	for _, name := range []string{"top", "bottom", "left", "right"} {
		if cmd.Flags().Changed(name) {
			changed++
		}
	}
	switch changed {
	case 0:
		path := flagUnsRecord
		if path == "" {
			path = record.PathFor(imagePath)
		}
		rec, err := record.Load(path)
		if err != nil {
			return region.Box{}, nil, fmt.Errorf("no region: pass --record or --top/--bottom/--left/--right (%w)", err)
		}
		box := region.Box{MinRow: rec.MinRow, MaxRow: rec.MaxRow, MinCol: rec.MinCol, MaxCol: rec.MaxCol}
		return box, &rec, box.Validate()
	case 4:
		box := region.Box{MinRow: flagUnsTop, MaxRow: flagUnsBottom, MinCol: flagUnsLeft, MaxCol: flagUnsRight}
		return box, nil, box.Validate()
	default:
		return region.Box{}, nil, fmt.Errorf("--top, --bottom, --left and --right must be given together")
	}
}
