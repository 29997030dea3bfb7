package pixelveil

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelveil/pixelveil/internal/report"
	"github.com/pixelveil/pixelveil/internal/watch"
)

var (
	flagWatchKey       string
	flagWatchLandmarks string
	flagWatchSettle    time.Duration
)

func init() {
	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Scramble images as they arrive in a directory",
		Long:  "Watch monitors DIR and scrambles every new image once it has settled. Each image needs landmarks: either the shared --landmarks file or a <base>.landmarks.json sidecar. Stop with Ctrl-C.",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagWatchKey, "key", "k", "", "comma-separated key values")
	cmd.Flags().StringVarP(&flagWatchLandmarks, "landmarks", "l", "", "landmark dump (JSON) applied to every image")
	cmd.Flags().DurationVar(&flagWatchSettle, "settle", time.Second, "how long a file must stay unchanged before scrambling")
}

func runWatch(_ *cobra.Command, args []string) error {
	lcfg, gcfg := loadConfigs()

	userKey, err := userKeyFromFlag(flagWatchKey)
	if err != nil {
		return err
	}
	outDir := pickString(flagOutputDir, lcfg.OutputDir, gcfg.OutputDir)
	if err := checkOutputDir(outDir); err != nil {
		return err
	}
	lmPath := pickString(flagWatchLandmarks, lcfg.Landmarks, gcfg.Landmarks)
	writeRecord := !pickBool(false, lcfg.NoRecord, gcfg.NoRecord)
	noColor := colorDisabled(pickBool(false, lcfg.NoColor, gcfg.NoColor))

	w, err := watch.New(args[0], flagWatchSettle)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "watching %s (Ctrl-C to stop)\n", args[0])
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, "stopping")
			return nil
		case err := <-w.Errors():
			fmt.Fprintln(os.Stderr, "watch warning:", err)
		case ev := <-w.Events():
			set, err := landmarksFor(ev.Path, lmPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, "skipping:", err)
				continue
			}
			s, err := scrambleOne(ev.Path, set, userKey, outDir, writeRecord, false)
			if err != nil {
				fmt.Fprintf(os.Stderr, "scramble %s: %v\n", ev.Path, err)
				continue
			}
			report.PrintText(os.Stdout, []report.Summary{s}, report.PrintOptions{NoColor: noColor})
		}
	}
}
