// Package copilot exports canonical packages as GitHub Copilot instruction
// files. Repository-wide instructions carry no frontmatter; the
// path-specific variant restores applyTo glob patterns from the side
// channel.
package copilot

import (
	"strings"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/pkg/frontmatter"
)

// VariantPathSpecific selects the .github/instructions/ file shape.
const VariantPathSpecific = "path-specific"

var sideKeys = map[string]bool{"applyTo": true}

type matter struct {
	ApplyTo []string `yaml:"applyTo,omitempty"`
}

// Exporter renders Copilot instruction files.
type Exporter struct{}

// New returns a Copilot exporter.
func New() *Exporter { return &Exporter{} }

// Format returns the copilot dialect tag.
func (*Exporter) Format() canonical.Format { return taxonomy.FormatCopilot }

// Export renders the package. The path-specific shape is chosen by option
// or by the presence of applyTo side data.
func (e *Exporter) Export(pkg *canonical.Package, opts exporter.Options) exporter.Result {
	caps := exporter.Capabilities{
		Dialect: taxonomy.FormatCopilot,
		Body:    exporter.MarkdownBody(),
	}
	body, warnings := exporter.Render(pkg, caps)
	warnings = append(warnings, exporter.SideDataWarnings(pkg, taxonomy.FormatCopilot, sideKeys)...)

	if !e.pathSpecific(pkg, opts) {
		return exporter.Finalize(body+"\n", warnings)
	}

	m := matter{}
	for _, g := range strings.Split(pkg.SideData["applyTo"], ",") {
		if g = strings.TrimSpace(g); g != "" {
			m.ApplyTo = append(m.ApplyTo, g)
		}
	}
	content, err := frontmatter.Format(m, body)
	if err != nil {
		warnings = append(warnings, "rendering frontmatter failed: "+err.Error())
		return exporter.Result{Warnings: warnings, LossyConversion: true}
	}
	return exporter.Finalize(string(content), warnings)
}

// Filename suggests the conventional Copilot path:
// .github/copilot-instructions.md repository-wide, or
// .github/instructions/<slug>.instructions.md path-specific.
func (e *Exporter) Filename(pkg *canonical.Package) string {
	if e.pathSpecific(pkg, exporter.Options{}) {
		return ".github/instructions/" + exporter.SlugOrDefault(pkg.Name, "custom") + ".instructions.md"
	}
	return ".github/copilot-instructions.md"
}

func (e *Exporter) pathSpecific(pkg *canonical.Package, opts exporter.Options) bool {
	return opts.Variant == VariantPathSpecific || pkg.SideData["applyTo"] != ""
}
