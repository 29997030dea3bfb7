package pixelveil

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"golang.org/x/term"
)

// User key limits enforced at the CLI boundary. The key package only
// enforces its own structural invariants.
const (
	userKeyMinLen = 10
	userKeyMaxLen = 100
	userKeyMinVal = 1
	userKeyMaxVal = 200
)

func selfUpdate() error {
	v := version
	// Use build info if tag overridden at build-time
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(v) == 0 {
				v = s.Value
			}
		}
	}
	// parse semantic version (strip leading v)
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	// Update from GitHub Releases: pixelveil/pixelveil
	latest, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), "pixelveil/pixelveil")
	if err != nil {
		return err
	}
	_ = latest
	return nil
}

// parseKeyValues accepts "3,14,15" or "3 14 15".
func parseKeyValues(raw string) ([]int, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty key")
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("key term %q is not an integer", f)
		}
		values[i] = n
	}
	return values, nil
}

// validateUserKey applies the CLI-level limits on user-supplied keys.
func validateUserKey(values []int) error {
	if len(values) < userKeyMinLen || len(values) > userKeyMaxLen {
		return fmt.Errorf("key length %d is not between %d and %d (inclusive)", len(values), userKeyMinLen, userKeyMaxLen)
	}
	for _, v := range values {
		if v < userKeyMinVal || v > userKeyMaxVal {
			return fmt.Errorf("key value %d not in range [%d, %d]", v, userKeyMinVal, userKeyMaxVal)
		}
	}
	return nil
}

// colorDisabled reports whether styled output should be suppressed:
// explicit flag, config, or stdout not being a terminal.
func colorDisabled(cfgNoColor bool) bool {
	if flagNoColor || cfgNoColor {
		return true
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
