// Package record persists the scramble sidecar: the region extrema a
// future unscramble needs, plus an advisory digest of the pre-scramble
// region pixels. The digest lets the CLI warn when a restore did not
// land back on the original content (for instance after a mistyped key);
// the engine itself cannot detect that.
package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Record is the on-disk sidecar shape.
type Record struct {
	Image        string    `json:"image"`
	MinRow       int       `json:"min_row"`
	MaxRow       int       `json:"max_row"`
	MinCol       int       `json:"min_col"`
	MaxCol       int       `json:"max_col"`
	KeyLength    int       `json:"key_length"`
	RegionDigest string    `json:"region_digest"`
	CreatedAt    time.Time `json:"created_at"`
}

// FormatDigest renders a region digest the way records store it.
func FormatDigest(d uint64) string {
	return fmt.Sprintf("%016x", d)
}

// ParseDigest reverses FormatDigest.
func ParseDigest(s string) (uint64, error) {
	return strconv.ParseUint(s, 16, 64)
}

// PathFor derives the sidecar path for an output image: the image path
// with its extension replaced by .region.json.
func PathFor(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + ".region.json"
}

// Save writes the record next to the image it describes.
func Save(path string, r Record) error {
	buf, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(buf, '\n'), 0644)
}

// Load reads a sidecar record.
func Load(path string) (Record, error) {
	var r Record
	b, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("read record: %w", err)
	}
	if err := json.Unmarshal(b, &r); err != nil {
		return r, fmt.Errorf("parse record: %w", err)
	}
	return r, nil
}
