// Package droid exports canonical packages as Factory Droid definition
// files: name/description frontmatter with the Droid-only argument-hint
// and allowed-tools fields restored from the side channel.
package droid

import (
	"strings"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/pkg/frontmatter"
)

var sideKeys = map[string]bool{"argument-hint": true, "allowed-tools": true}

type matter struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description,omitempty"`
	ArgumentHint string `yaml:"argument-hint,omitempty"`
	AllowedTools string `yaml:"allowed-tools,omitempty"`
}

// Exporter renders Droid files.
type Exporter struct{}

// New returns a Droid exporter.
func New() *Exporter { return &Exporter{} }

// Format returns the droid dialect tag.
func (*Exporter) Format() canonical.Format { return taxonomy.FormatDroid }

// Export renders the package with Droid frontmatter. A canonical tools
// section folds into allowed-tools when the side channel carries none.
func (e *Exporter) Export(pkg *canonical.Package, opts exporter.Options) exporter.Result {
	caps := exporter.Capabilities{
		Dialect: taxonomy.FormatDroid,
		Body:    exporter.MarkdownBody(),
		Consumed: map[canonical.SectionKind]bool{
			canonical.KindMetadata: true,
			canonical.KindTools:    true,
		},
	}
	caps.Body[canonical.KindMetadata] = false

	body, warnings := exporter.Render(pkg, caps)
	warnings = append(warnings, exporter.SideDataWarnings(pkg, taxonomy.FormatDroid, sideKeys)...)

	m := matter{
		Name:         exporter.SlugOrDefault(pkg.Name, "untitled"),
		ArgumentHint: pkg.SideData["argument-hint"],
		AllowedTools: pkg.SideData["allowed-tools"],
	}
	if md := pkg.Metadata(); md != nil {
		m.Description = md.Description
	}
	if m.AllowedTools == "" {
		if tools := collectTools(pkg); len(tools) > 0 {
			m.AllowedTools = strings.Join(tools, ", ")
		}
	}

	content, err := frontmatter.Format(m, body)
	if err != nil {
		warnings = append(warnings, "rendering frontmatter failed: "+err.Error())
		return exporter.Result{Warnings: warnings, LossyConversion: true}
	}
	return exporter.Finalize(string(content), warnings)
}

// Filename suggests .factory/commands/<slug>.md for slash commands and
// .factory/droids/<slug>.md otherwise.
func (e *Exporter) Filename(pkg *canonical.Package) string {
	slug := exporter.SlugOrDefault(pkg.Name, "untitled")
	if pkg.Subtype() == taxonomy.SubtypeSlashCommand {
		return ".factory/commands/" + slug + ".md"
	}
	return ".factory/droids/" + slug + ".md"
}

func collectTools(pkg *canonical.Package) []string {
	var tools []string
	for _, s := range pkg.Content.Sections {
		if t, ok := s.(*canonical.ToolsSection); ok {
			tools = append(tools, t.Tools...)
		}
	}
	return tools
}
