package pixelveil

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelveil/pixelveil/internal/key"
	"github.com/pixelveil/pixelveil/internal/report"
)

var (
	flagKeygenLength int
	flagKeygenMin    int
	flagKeygenMax    int
	flagKeygenSeed   int64
)

func init() {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random scrambling key",
		Long:  "Keygen draws a uniform random key, printed comma-separated so it can be passed straight to scramble --key. A fixed --seed reproduces the same key.",
		RunE:  runKeygen,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVar(&flagKeygenLength, "length", 0, fmt.Sprintf("number of key values (default %d)", key.DefaultLength))
	cmd.Flags().IntVar(&flagKeygenMin, "min", 0, fmt.Sprintf("minimum key value (default %d)", key.DefaultMin))
	cmd.Flags().IntVar(&flagKeygenMax, "max", 0, fmt.Sprintf("maximum key value (default %d)", key.DefaultMax))
	cmd.Flags().Int64Var(&flagKeygenSeed, "seed", 0, "seed for reproducible keys (default: time-based)")
}

func runKeygen(cmd *cobra.Command, _ []string) error {
	lcfg, gcfg := loadConfigs()

	length := pickInt(flagKeygenLength, lcfg.KeyLength, gcfg.KeyLength)
	if length == 0 {
		length = key.DefaultLength
	}
	lo := pickInt(flagKeygenMin, lcfg.KeyMin, gcfg.KeyMin)
	if lo == 0 {
		lo = key.DefaultMin
	}
	hi := pickInt(flagKeygenMax, lcfg.KeyMax, gcfg.KeyMax)
	if hi == 0 {
		hi = key.DefaultMax
	}

	seed := flagKeygenSeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	k, err := key.NewRandom(rand.New(rand.NewSource(seed)), lo, hi, length)
	if err != nil {
		return err
	}

	if flagJSON {
		return report.WriteJSON(os.Stdout, k.Values())
	}
	values := k.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	fmt.Fprintln(os.Stdout, strings.Join(parts, ","))
	return nil
}
