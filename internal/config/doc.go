// Package config provides configuration management for the rulebridge CLI.
//
// This package handles loading and validating the rulebridge tool's own
// configuration file. It is distinct from the dialect files the tool
// converts, which are handled by the importer and exporter packages.
//
// # Configuration File
//
// The default configuration file location is ~/.config/rulebridge/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	default_targets:
//	  - cursor
//	  - claude
//	dialects:
//	  claude:
//	    output_dir: /custom/claude # optional
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// Pass a non-empty path to Load to read a specific file; a missing file
// is then an error rather than a fallback to defaults.
//
// # Validation
//
// Validate a configuration manually:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
//
// Environment variables prefixed with RULEBRIDGE_ override file values.
package config
