// Package pixelveil provides the command-line interface for the Pixelveil
// tool. It configures subcommands (scramble, unscramble, region, etc.),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/pixelveil/pixelveil/cmd/pixelveil"
//	func main() { pixelveil.Execute() }
package pixelveil
