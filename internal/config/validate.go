package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidDialect indicates an unrecognized dialect name.
	ErrInvalidDialect = errors.New("invalid dialect")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	// Version must be >= 1
	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	// Validate dialect names
	for _, target := range cfg.DefaultTargets {
		if !taxonomy.ValidFormat(canonical.Format(target)) {
			errs = append(errs, &DialectError{
				Dialect: target,
				Err:     ErrInvalidDialect,
			})
		}
	}

	// Validate override keys and their output directories
	for name, override := range cfg.Dialects {
		if !taxonomy.ValidFormat(canonical.Format(name)) {
			errs = append(errs, &DialectError{
				Dialect: name,
				Err:     ErrInvalidDialect,
			})
		}
		if override.OutputDir != "" {
			if err := validatePath(override.OutputDir); err != nil {
				errs = append(errs, &PathError{
					Field: "dialects." + name + ".output_dir",
					Path:  override.OutputDir,
					Err:   err,
				})
			}
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// DialectError represents an error for a specific dialect name.
type DialectError struct {
	Dialect string
	Err     error
}

func (e *DialectError) Error() string {
	return e.Err.Error() + ": " + e.Dialect
}

func (e *DialectError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
