// Package kiro exports canonical packages as Kiro steering files. The
// dialect mandates an inclusion mode in frontmatter; a package without one
// on its side channel cannot be rendered and yields an explicit
// empty-content result instead of invalid output.
package kiro

import (
	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/pkg/frontmatter"
)

var sideKeys = map[string]bool{
	"inclusion":        true,
	"fileMatchPattern": true,
	"domain":           true,
}

type matter struct {
	Inclusion        string `yaml:"inclusion"`
	FileMatchPattern string `yaml:"fileMatchPattern,omitempty"`
	Domain           string `yaml:"domain,omitempty"`
}

// Exporter renders Kiro steering files.
type Exporter struct{}

// New returns a Kiro exporter.
func New() *Exporter { return &Exporter{} }

// Format returns the kiro dialect tag.
func (*Exporter) Format() canonical.Format { return taxonomy.FormatKiro }

// Export renders the package. A missing or incomplete inclusion mode is a
// configuration requirement the caller must surface: the result is empty
// with a zero score, never invalid steering output.
func (e *Exporter) Export(pkg *canonical.Package, opts exporter.Options) exporter.Result {
	inclusion := pkg.SideData["inclusion"]
	pattern := pkg.SideData["fileMatchPattern"]

	switch inclusion {
	case "":
		return exporter.Result{
			Warnings:     []string{"kiro export requires an inclusion mode (always, manual, or fileMatch) on the package metadata"},
			QualityScore: 0,
		}
	case "fileMatch":
		if pattern == "" {
			return exporter.Result{
				Warnings:     []string{"kiro export requires fileMatchPattern when inclusion is fileMatch"},
				QualityScore: 0,
			}
		}
	case "always", "manual":
	default:
		return exporter.Result{
			Warnings:     []string{"kiro export: unrecognized inclusion mode " + inclusion},
			QualityScore: 0,
		}
	}

	caps := exporter.Capabilities{
		Dialect: taxonomy.FormatKiro,
		Body:    exporter.MarkdownBody(),
	}
	body, warnings := exporter.Render(pkg, caps)
	warnings = append(warnings, exporter.SideDataWarnings(pkg, taxonomy.FormatKiro, sideKeys)...)

	m := matter{
		Inclusion:        inclusion,
		FileMatchPattern: pattern,
		Domain:           pkg.SideData["domain"],
	}
	content, err := frontmatter.Format(m, body)
	if err != nil {
		warnings = append(warnings, "rendering frontmatter failed: "+err.Error())
		return exporter.Result{Warnings: warnings, LossyConversion: true}
	}
	return exporter.Finalize(string(content), warnings)
}

// Filename suggests .kiro/steering/<slug>.md.
func (e *Exporter) Filename(pkg *canonical.Package) string {
	slug := pkg.SideData["domain"]
	if slug == "" {
		slug = pkg.Name
	}
	return ".kiro/steering/" + exporter.SlugOrDefault(slug, "steering") + ".md"
}
