package core

import (
	"encoding/json"
	"io"
)

// MarshalBox pretty-prints a bounding box as JSON for humans or pipelines.
func MarshalBox(w io.Writer, box Box) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(box)
}

// UnmarshalBox decodes bounding box JSON, useful for ingestion tests.
func UnmarshalBox(r io.Reader) (Box, error) {
	var b Box
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Box{}, err
	}
	return b, nil
}
