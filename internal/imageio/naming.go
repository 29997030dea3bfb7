package imageio

import (
	"path/filepath"
	"strings"
)

const (
	scrambledSuffix   = "_Scrambled"
	unscrambledSuffix = "_Unscrambled"
)

// ScrambledPath is the destination for a scrambled copy of srcPath:
// <base>_Scrambled.<ext> in outDir, or next to the source when outDir
// is empty.
func ScrambledPath(srcPath, outDir string) string {
	base, ext := splitName(srcPath)
	return filepath.Join(dirFor(srcPath, outDir), base+scrambledSuffix+ext)
}

// UnscrambledPath is the destination for an unscrambled copy of srcPath.
// A _Scrambled suffix carried over from a previous scramble is stripped
// first, so foo_Scrambled.png restores to foo_Unscrambled.png.
func UnscrambledPath(srcPath, outDir string) string {
	base, ext := splitName(srcPath)
	base = strings.TrimSuffix(base, scrambledSuffix)
	return filepath.Join(dirFor(srcPath, outDir), base+unscrambledSuffix+ext)
}

func splitName(path string) (base, ext string) {
	name := filepath.Base(path)
	ext = filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

func dirFor(srcPath, outDir string) string {
	if outDir != "" {
		return outDir
	}
	return filepath.Dir(srcPath)
}
