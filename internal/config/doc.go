// Package config loads Pixelveil configuration from local and global YAML
// files with precedence rules. It is internal; CLI code maps flags and files
// into operation settings.
package config
