package pixelveil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/pixelveil/pixelveil/internal/config"
	"github.com/pixelveil/pixelveil/internal/imageio"
	"github.com/pixelveil/pixelveil/internal/key"
	"github.com/pixelveil/pixelveil/internal/landmarks"
	"github.com/pixelveil/pixelveil/internal/permute"
	"github.com/pixelveil/pixelveil/internal/pixgrid"
	"github.com/pixelveil/pixelveil/internal/record"
	"github.com/pixelveil/pixelveil/internal/region"
	"github.com/pixelveil/pixelveil/internal/report"
	"github.com/pixelveil/pixelveil/internal/update"
)

var (
	flagScrKey       string
	flagScrLandmarks string
	flagScrGlob      string
	flagScrNoRecord  bool
	flagScrDryRun    bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scramble IMAGE",
		Short: "Scramble the face region of an image",
		Long:  "Scramble permutes the rows of the landmark bounding box with a key-driven swap chain and writes <base>_Scrambled.<ext>. The same key and region are required to undo it.",
		Args:  cobra.ExactArgs(1),
		RunE:  runScramble,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagScrKey, "key", "k", "", "comma-separated key values, e.g. 12,87,3,199,...")
	cmd.Flags().StringVarP(&flagScrLandmarks, "landmarks", "l", "", "landmark dump (JSON) from the external detector")
	cmd.Flags().StringVar(&flagScrGlob, "glob", "", "treat IMAGE as a directory and scramble files matching this glob")
	cmd.Flags().BoolVar(&flagScrNoRecord, "no-record", false, "do not write the region record sidecar")
	cmd.Flags().BoolVar(&flagScrDryRun, "dry-run", false, "resolve targets and regions without writing anything")
}

func runScramble(_ *cobra.Command, args []string) error {
	lcfg, gcfg := loadConfigs()

	userKey, err := userKeyFromFlag(flagScrKey)
	if err != nil {
		return err
	}

	outDir := pickString(flagOutputDir, lcfg.OutputDir, gcfg.OutputDir)
	if err := checkOutputDir(outDir); err != nil {
		return err
	}
	lmPath := pickString(flagScrLandmarks, lcfg.Landmarks, gcfg.Landmarks)
	glob := pickString(flagScrGlob, lcfg.Glob, gcfg.Glob)
	writeRecord := !pickBool(flagScrNoRecord, lcfg.NoRecord, gcfg.NoRecord)
	noColor := colorDisabled(pickBool(false, lcfg.NoColor, gcfg.NoColor))

	if !flagJSON && !flagNoUpdateCheck {
		if latest, newer, _ := update.Check(version, false); newer && latest != "" {
			fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'pixelveil update' to upgrade\n", latest)
		}
	}

	targets, err := resolveTargets(args[0], glob)
	if err != nil {
		return err
	}

	var summaries []report.Summary
	for _, target := range targets {
		set, err := landmarksFor(target, lmPath)
		if err != nil {
			return err
		}
		s, err := scrambleOne(target, set, userKey, outDir, writeRecord, flagScrDryRun)
		if err != nil {
			return fmt.Errorf("scramble %s: %w", target, err)
		}
		summaries = append(summaries, s)
	}

	if flagJSON {
		return report.WriteJSON(os.Stdout, summaries)
	}
	report.PrintText(os.Stdout, summaries, report.PrintOptions{NoColor: noColor})
	return nil
}

func scrambleOne(path string, set landmarks.Set, userKey key.Vector, outDir string, writeRecord, dryRun bool) (report.Summary, error) {
	start := time.Now()

	box, err := region.FromLandmarks(set)
	if err != nil {
		return report.Summary{}, err
	}

	img, err := imageio.Decode(path)
	if err != nil {
		return report.Summary{}, err
	}
	grid := pixgrid.FromImage(img)
	if err := box.CheckWithin(grid.Rows(), grid.Cols()); err != nil {
		return report.Summary{}, err
	}

	out := imageio.ScrambledPath(path, outDir)
	s := report.Summary{
		Operation: "scramble",
		Image:     path,
		Output:    out,
		Region:    box,
		KeyLength: userKey.Len(),
	}
	if dryRun {
		s.Duration = time.Since(start)
		return s, nil
	}

	digest := grid.RegionDigest(box)
	if err := (permute.KeyBased{}).Scramble(grid, box, userKey); err != nil {
		return report.Summary{}, err
	}

	if !imageio.Lossless(out) {
		fmt.Fprintf(os.Stderr, "warning: %s uses a lossy codec; the scramble cannot be undone bit-for-bit\n", out)
	}
	if err := imageio.Encode(out, grid.Image()); err != nil {
		return report.Summary{}, err
	}

	if writeRecord {
		recPath := record.PathFor(out)
		rec := record.Record{
			Image:        filepath.Base(out),
			MinRow:       box.MinRow,
			MaxRow:       box.MaxRow,
			MinCol:       box.MinCol,
			MaxCol:       box.MaxCol,
			KeyLength:    userKey.Len(),
			RegionDigest: record.FormatDigest(digest),
			CreatedAt:    time.Now().UTC(),
		}
		if err := record.Save(recPath, rec); err != nil {
			return report.Summary{}, err
		}
		s.Record = recPath
	}

	s.Duration = time.Since(start)
	return s, nil
}

// resolveTargets expands a --glob run over a directory, or returns the
// single image path as-is.
func resolveTargets(root, glob string) ([]string, error) {
	if glob == "" {
		return []string{root}, nil
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("--glob requires a directory, got %s", root)
	}
	matches, err := doublestar.Glob(os.DirFS(root), glob)
	if err != nil {
		return nil, fmt.Errorf("bad glob %q: %w", glob, err)
	}
	var targets []string
	for _, m := range matches {
		// outputs of a previous run are not inputs
		base := strings.TrimSuffix(filepath.Base(m), filepath.Ext(m))
		if strings.HasSuffix(base, "_Scrambled") || strings.HasSuffix(base, "_Unscrambled") {
			continue
		}
		targets = append(targets, filepath.Join(root, m))
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no images match %q under %s", glob, root)
	}
	return targets, nil
}

// landmarksFor loads the explicit landmark file when given, otherwise the
// per-image sidecar <base>.landmarks.json next to the image.
func landmarksFor(imagePath, explicit string) (landmarks.Set, error) {
	if explicit != "" {
		return landmarks.Load(explicit)
	}
	ext := filepath.Ext(imagePath)
	sidecar := strings.TrimSuffix(imagePath, ext) + ".landmarks.json"
	set, err := landmarks.Load(sidecar)
	if err != nil {
		return nil, fmt.Errorf("no --landmarks given and no sidecar at %s: %w", sidecar, err)
	}
	return set, nil
}

func userKeyFromFlag(raw string) (key.Vector, error) {
	if raw == "" {
		return key.Vector{}, errors.New("--key is required")
	}
	values, err := parseKeyValues(raw)
	if err != nil {
		return key.Vector{}, err
	}
	if err := validateUserKey(values); err != nil {
		return key.Vector{}, err
	}
	return key.New(values)
}

func checkOutputDir(dir string) error {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %s is not a directory", dir)
	}
	return nil
}

func loadConfigs() (local, global config.FileConfig) {
	if c, err := config.LoadGlobal(); err == nil {
		global = c
	}
	if wd, err := os.Getwd(); err == nil {
		if c, err := config.LoadLocal(wd); err == nil {
			local = c
		}
	}
	return local, global
}
