// Package agentsmd exports canonical packages as AGENTS.md files, the
// cross-tool instruction format: plain markdown, fixed filename.
package agentsmd

import (
	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

// Exporter renders AGENTS.md files.
type Exporter struct{}

// New returns an agents.md exporter.
func New() *Exporter { return &Exporter{} }

// Format returns the agentsmd dialect tag.
func (*Exporter) Format() canonical.Format { return taxonomy.FormatAgentsMD }

// Export renders the package body as plain markdown.
func (e *Exporter) Export(pkg *canonical.Package, opts exporter.Options) exporter.Result {
	caps := exporter.Capabilities{
		Dialect: taxonomy.FormatAgentsMD,
		Body:    exporter.MarkdownBody(),
	}
	body, warnings := exporter.Render(pkg, caps)
	warnings = append(warnings, exporter.SideDataWarnings(pkg, taxonomy.FormatAgentsMD, nil)...)
	return exporter.Finalize(body+"\n", warnings)
}

// Filename returns the fixed AGENTS.md path.
func (e *Exporter) Filename(pkg *canonical.Package) string {
	return "AGENTS.md"
}
