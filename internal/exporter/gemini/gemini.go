// Package gemini exports canonical packages as Gemini CLI command files:
// TOML documents with a description and a prompt holding the rendered
// markdown body.
package gemini

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

// Command is the Gemini CLI command file schema.
type Command struct {
	Description string `toml:"description,omitempty"`
	Prompt      string `toml:"prompt,multiline"`
}

// Exporter renders Gemini command files.
type Exporter struct{}

// New returns a Gemini exporter.
func New() *Exporter { return &Exporter{} }

// Format returns the gemini dialect tag.
func (*Exporter) Format() canonical.Format { return taxonomy.FormatGemini }

// Export renders the package body into the TOML prompt field. The
// description comes from the metadata section, which therefore stays out
// of the prompt.
func (e *Exporter) Export(pkg *canonical.Package, opts exporter.Options) exporter.Result {
	caps := exporter.Capabilities{
		Dialect: taxonomy.FormatGemini,
		Body:    exporter.MarkdownBody(),
		Consumed: map[canonical.SectionKind]bool{
			canonical.KindMetadata: true,
		},
	}
	caps.Body[canonical.KindMetadata] = false

	prompt, warnings := exporter.Render(pkg, caps)
	warnings = append(warnings, exporter.SideDataWarnings(pkg, taxonomy.FormatGemini, nil)...)

	cmd := Command{Prompt: prompt}
	if md := pkg.Metadata(); md != nil {
		cmd.Description = md.Description
	}

	content, err := toml.Marshal(cmd)
	if err != nil {
		warnings = append(warnings, "rendering TOML failed: "+err.Error())
		return exporter.Result{Warnings: warnings, LossyConversion: true}
	}
	return exporter.Finalize(string(content), warnings)
}

// Filename suggests .gemini/commands/<slug>.toml.
func (e *Exporter) Filename(pkg *canonical.Package) string {
	return ".gemini/commands/" + exporter.SlugOrDefault(pkg.Name, "command") + ".toml"
}
