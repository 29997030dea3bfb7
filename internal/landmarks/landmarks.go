// Package landmarks models the output of an external facial-landmark
// detector. Detection itself is out of scope; the detector hands over a
// map of 1-based landmark ids to pixel coordinates, typically as a JSON
// dump of a 68-point predictor:
//
//	{"1": {"x": 120, "y": 84}, "2": {"x": 122, "y": 96}, ...}
//
// An empty set is a legitimate "no face found" outcome, not an error at
// this layer; region derivation decides what to do with it.
package landmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Point is a pixel coordinate. X is the column, Y the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Set maps landmark ids to their coordinates.
type Set map[int]Point

// Load reads a landmark dump from path.
func Load(path string) (Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read landmarks: %w", err)
	}
	return Parse(b)
}

// Parse decodes a JSON landmark dump.
func Parse(data []byte) (Set, error) {
	var raw map[string]Point
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse landmarks: %w", err)
	}
	set := make(Set, len(raw))
	for id, pt := range raw {
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("parse landmarks: id %q is not an integer", id)
		}
		set[n] = pt
	}
	return set, nil
}

// Save writes the set back out as a JSON dump, for fixtures and for
// round-tripping detector output.
func (s Set) Save(path string) error {
	raw := make(map[string]Point, len(s))
	for id, pt := range s {
		raw[strconv.Itoa(id)] = pt
	}
	buf, _ := json.MarshalIndent(raw, "", "  ")
	return os.WriteFile(path, buf, 0644)
}
