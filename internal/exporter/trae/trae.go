// Package trae exports canonical packages as Trae rule files: plain
// markdown under .trae/rules/.
package trae

import (
	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

// Exporter renders Trae rule files.
type Exporter struct{}

// New returns a Trae exporter.
func New() *Exporter { return &Exporter{} }

// Format returns the trae dialect tag.
func (*Exporter) Format() canonical.Format { return taxonomy.FormatTrae }

// Export renders the package body as plain markdown.
func (e *Exporter) Export(pkg *canonical.Package, opts exporter.Options) exporter.Result {
	caps := exporter.Capabilities{
		Dialect: taxonomy.FormatTrae,
		Body:    exporter.MarkdownBody(),
	}
	body, warnings := exporter.Render(pkg, caps)
	warnings = append(warnings, exporter.SideDataWarnings(pkg, taxonomy.FormatTrae, nil)...)
	return exporter.Finalize(body+"\n", warnings)
}

// Filename suggests .trae/rules/<slug>.md.
func (e *Exporter) Filename(pkg *canonical.Package) string {
	return ".trae/rules/" + exporter.SlugOrDefault(pkg.Name, "rules") + ".md"
}
