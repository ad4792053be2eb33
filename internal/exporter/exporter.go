// Package exporter converts canonical packages into dialect text.
//
// Every dialect exporter renders through the shared markdown renderer,
// parameterized by a per-dialect capability table, and scores the result
// with the fixed penalty constants in score.go. Exports never fail: a
// recoverable problem degrades into warnings on the result, and a panic
// during rendering is converted by [Recovered] into a zero-quality result
// so batch jobs keep going.
package exporter

import (
	"fmt"

	"github.com/rulebridge/rulebridge/internal/canonical"
)

// Result is the outcome of one export.
type Result struct {
	// Content is the exact bytes to write at the dialect's conventional
	// path. Empty when the package cannot be represented at all.
	Content string `json:"content"`

	// Warnings accumulates advisory diagnostics: unsupported-section
	// skips, dropped dialect features, missing configuration.
	Warnings []string `json:"warnings,omitempty"`

	// LossyConversion is true when the target dialect could not represent
	// all of the package's structure.
	LossyConversion bool `json:"lossyConversion"`

	// QualityScore is 0-100; 100 means a faithful conversion.
	QualityScore int `json:"qualityScore"`
}

// Options tune an export.
type Options struct {
	// Variant selects a dialect sub-flavor when one dialect has several
	// file shapes (e.g. Copilot repository-wide vs path-specific
	// instructions). Empty picks the default for the package's subtype.
	Variant string
}

// Exporter renders a canonical package as one dialect's text.
// Implementations are pure: no I/O, no shared mutable state, safe for
// concurrent use.
type Exporter interface {
	// Format returns the dialect tag this exporter produces.
	Format() canonical.Format

	// Export renders the package. It must not panic; recoverable problems
	// become warnings on the result.
	Export(pkg *canonical.Package, opts Options) Result

	// Filename suggests the dialect's conventional file path for the
	// package, derived only from package identity.
	Filename(pkg *canonical.Package) string
}

// Recovered invokes e.Export and converts a panic into a zero-quality
// result carrying an explanatory warning, so one malformed package cannot
// halt a batch conversion.
func Recovered(e Exporter, pkg *canonical.Package, opts Options) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Warnings:        []string{fmt.Sprintf("export to %s failed: %v", e.Format(), r)},
				LossyConversion: true,
				QualityScore:    0,
			}
		}
	}()
	return e.Export(pkg, opts)
}
