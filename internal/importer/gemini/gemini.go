// Package gemini imports Gemini CLI custom command files. Unlike the
// markdown dialects these are TOML documents with a description and a
// prompt body.
package gemini

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/importer"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

// Command is the Gemini CLI command file schema.
type Command struct {
	Description string `toml:"description,omitempty"`
	Prompt      string `toml:"prompt"`
}

// Importer converts Gemini command files to canonical packages.
type Importer struct{}

// New returns a Gemini importer.
func New() *Importer { return &Importer{} }

// Format returns the gemini dialect tag.
func (*Importer) Format() canonical.Format { return taxonomy.FormatGemini }

// Import parses a TOML command file. A missing prompt is a structural
// failure: Gemini refuses command files without one.
func (i *Importer) Import(raw []byte, src canonical.Source) (*canonical.Package, error) {
	var cmd Command
	if err := toml.Unmarshal(raw, &cmd); err != nil {
		return nil, importer.NewStructuralError("gemini", "", "malformed TOML: "+err.Error())
	}
	if cmd.Prompt == "" {
		return nil, importer.NewStructuralError("gemini", "prompt", "prompt is required")
	}

	doc := &importer.Document{Description: cmd.Description}
	doc.Sections = []canonical.Section{
		&canonical.InstructionsSection{Text: cmd.Prompt},
	}
	pkg := importer.Build(src, doc, nil, cmd.Prompt)
	if err := taxonomy.Assign(pkg, taxonomy.FormatGemini, taxonomy.SubtypeSlashCommand); err != nil {
		return nil, err
	}
	return pkg, nil
}
