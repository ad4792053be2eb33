// Package aider exports canonical packages as Aider convention files: a
// fixed CONVENTIONS.md at the project root, plain markdown.
package aider

import (
	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

// Exporter renders Aider convention files.
type Exporter struct{}

// New returns an Aider exporter.
func New() *Exporter { return &Exporter{} }

// Format returns the aider dialect tag.
func (*Exporter) Format() canonical.Format { return taxonomy.FormatAider }

// Export renders the package body as plain markdown.
func (e *Exporter) Export(pkg *canonical.Package, opts exporter.Options) exporter.Result {
	caps := exporter.Capabilities{
		Dialect: taxonomy.FormatAider,
		Body:    exporter.MarkdownBody(),
	}
	body, warnings := exporter.Render(pkg, caps)
	warnings = append(warnings, exporter.SideDataWarnings(pkg, taxonomy.FormatAider, nil)...)
	return exporter.Finalize(body+"\n", warnings)
}

// Filename returns the fixed CONVENTIONS.md path.
func (e *Exporter) Filename(pkg *canonical.Package) string {
	return "CONVENTIONS.md"
}
