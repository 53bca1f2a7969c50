// Package config handles skillcheck's own configuration file.
//
// # Configuration File
//
// The file is named config.yaml and is looked up only in the skillcheck
// config directory (see package paths), never in the current directory:
//
//	version: 1
//	color: auto        # auto, always, never
//	log_format: text   # text, json
//
// Every key can be overridden with a SKILLCHECK_ environment variable,
// e.g. SKILLCHECK_COLOR=never.
//
// Configuration only affects presentation. Check thresholds and finding
// messages are fixed.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("") // search paths, defaults when absent
//	cfg, err := config.Load("/path/to/config.yaml") // must exist
package config
