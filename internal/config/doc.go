// Package config loads and validates richnote configuration.
//
// Configuration is read from a TOML file, overlaid with RICHNOTE_*
// environment variables, and validated before use. A missing config
// file is not an error; defaults apply. The watcher subpackage
// provides live reload when the file changes on disk.
package config
