// Package cursor exports canonical packages as Cursor rule files. Packages
// carrying .mdc side data (globs, alwaysApply) become modern .mdc files
// with frontmatter; everything else becomes a legacy .cursorrules body.
package cursor

import (
	"strings"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/pkg/frontmatter"
)

// sideKeys are the side-channel fields this dialect can represent.
var sideKeys = map[string]bool{"globs": true, "alwaysApply": true}

type matter struct {
	Description string   `yaml:"description,omitempty"`
	Globs       []string `yaml:"globs,omitempty"`
	AlwaysApply bool     `yaml:"alwaysApply,omitempty"`
}

// Exporter renders Cursor rule files.
type Exporter struct{}

// New returns a Cursor exporter.
func New() *Exporter { return &Exporter{} }

// Format returns the cursor dialect tag.
func (*Exporter) Format() canonical.Format { return taxonomy.FormatCursor }

// Export renders the package body; .mdc side data is restored as
// frontmatter when present.
func (e *Exporter) Export(pkg *canonical.Package, opts exporter.Options) exporter.Result {
	caps := exporter.Capabilities{
		Dialect: taxonomy.FormatCursor,
		Body:    exporter.MarkdownBody(),
	}
	body, warnings := exporter.Render(pkg, caps)
	warnings = append(warnings, exporter.SideDataWarnings(pkg, taxonomy.FormatCursor, sideKeys)...)

	if !e.modern(pkg) {
		return exporter.Finalize(body+"\n", warnings)
	}

	m := matter{}
	if md := pkg.Metadata(); md != nil {
		m.Description = md.Description
	}
	if globs := pkg.SideData["globs"]; globs != "" {
		for _, g := range strings.Split(globs, ",") {
			if g = strings.TrimSpace(g); g != "" {
				m.Globs = append(m.Globs, g)
			}
		}
	}
	m.AlwaysApply = pkg.SideData["alwaysApply"] == "true"

	content, err := frontmatter.Format(m, body)
	if err != nil {
		warnings = append(warnings, "rendering frontmatter failed: "+err.Error())
		return exporter.Result{Warnings: warnings, LossyConversion: true}
	}
	return exporter.Finalize(string(content), warnings)
}

// Filename suggests .cursor/rules/<slug>.mdc for modern rules, the fixed
// legacy .cursorrules path otherwise.
func (e *Exporter) Filename(pkg *canonical.Package) string {
	if e.modern(pkg) {
		return ".cursor/rules/" + exporter.SlugOrDefault(pkg.Name, "rules") + ".mdc"
	}
	return ".cursorrules"
}

func (e *Exporter) modern(pkg *canonical.Package) bool {
	return pkg.SideData["globs"] != "" || pkg.SideData["alwaysApply"] != ""
}
