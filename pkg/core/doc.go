// Package core provides a small, stable facade over Pixelveil's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so third-party tools can depend on a stable import path without
// exposing internal implementation packages.
//
// Example:
//
//	set, err := landmarks.Load("face.landmarks.json")
//	if err != nil { /* handle */ }
//	out, box, err := core.Scramble(img, set, keyValues)
//	if err != nil { /* handle */ }
//	_ = core.MarshalBox(os.Stdout, box)
package core
