// Package windsurf exports canonical packages as Windsurf rule files.
// Side-channel fields captured on import are re-emitted verbatim as
// frontmatter.
package windsurf

import (
	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/pkg/frontmatter"
)

// Exporter renders Windsurf rule files.
type Exporter struct{}

// New returns a Windsurf exporter.
func New() *Exporter { return &Exporter{} }

// Format returns the windsurf dialect tag.
func (*Exporter) Format() canonical.Format { return taxonomy.FormatWindsurf }

// Export renders the package, restoring any side-channel frontmatter.
func (e *Exporter) Export(pkg *canonical.Package, opts exporter.Options) exporter.Result {
	caps := exporter.Capabilities{
		Dialect: taxonomy.FormatWindsurf,
		Body:    exporter.MarkdownBody(),
	}
	body, warnings := exporter.Render(pkg, caps)

	if len(pkg.SideData) == 0 {
		return exporter.Finalize(body+"\n", warnings)
	}

	content, err := frontmatter.Format(pkg.SideData, body)
	if err != nil {
		warnings = append(warnings, "rendering frontmatter failed: "+err.Error())
		return exporter.Result{Warnings: warnings, LossyConversion: true}
	}
	return exporter.Finalize(string(content), warnings)
}

// Filename suggests .windsurf/rules/<slug>.md.
func (e *Exporter) Filename(pkg *canonical.Package) string {
	return ".windsurf/rules/" + exporter.SlugOrDefault(pkg.Name, "rules") + ".md"
}
