// Package claude exports canonical packages as Claude configuration files.
// Rules become frontmatter-free CLAUDE.md bodies; agents, skills, and slash
// commands carry name/description frontmatter, with the tools section and
// the model side-channel field folded into it. Claude is the one dialect
// that renders persona sections.
package claude

import (
	"strings"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/pkg/frontmatter"
)

var sideKeys = map[string]bool{"model": true}

type matter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Tools       string `yaml:"tools,omitempty"`
	Model       string `yaml:"model,omitempty"`
}

// Exporter renders Claude files.
type Exporter struct{}

// New returns a Claude exporter.
func New() *Exporter { return &Exporter{} }

// Format returns the claude dialect tag.
func (*Exporter) Format() canonical.Format { return taxonomy.FormatClaude }

// Export renders the package. Definition subtypes (agent, skill,
// slash-command, hook) get frontmatter; rule packages render body-only.
func (e *Exporter) Export(pkg *canonical.Package, opts exporter.Options) exporter.Result {
	withMatter := pkg.Subtype() != taxonomy.SubtypeRule && pkg.Subtype() != ""

	body := exporter.MarkdownBody()
	body[canonical.KindPersona] = true
	caps := exporter.Capabilities{
		Dialect:  taxonomy.FormatClaude,
		Body:     body,
		Consumed: map[canonical.SectionKind]bool{},
	}
	if withMatter {
		// Identity and tools move to frontmatter; keep them out of the
		// body. Memory files have no frontmatter, so for them a tools
		// section has nowhere to go and Render warns.
		caps.Body[canonical.KindMetadata] = false
		caps.Consumed[canonical.KindMetadata] = true
		caps.Consumed[canonical.KindTools] = true
	}

	rendered, warnings := exporter.Render(pkg, caps)
	warnings = append(warnings, exporter.SideDataWarnings(pkg, taxonomy.FormatClaude, sideKeys)...)

	if !withMatter {
		return exporter.Finalize(rendered+"\n", warnings)
	}

	m := matter{
		Name:  exporter.SlugOrDefault(pkg.Name, "untitled"),
		Model: pkg.SideData["model"],
	}
	if md := pkg.Metadata(); md != nil {
		m.Description = md.Description
	}
	if tools := collectTools(pkg); len(tools) > 0 {
		m.Tools = strings.Join(tools, ", ")
	}

	content, err := frontmatter.Format(m, rendered)
	if err != nil {
		warnings = append(warnings, "rendering frontmatter failed: "+err.Error())
		return exporter.Result{Warnings: warnings, LossyConversion: true}
	}
	return exporter.Finalize(string(content), warnings)
}

// Filename suggests the conventional Claude path per subtype.
func (e *Exporter) Filename(pkg *canonical.Package) string {
	slug := exporter.SlugOrDefault(pkg.Name, "untitled")
	switch pkg.Subtype() {
	case taxonomy.SubtypeAgent:
		return ".claude/agents/" + slug + ".md"
	case taxonomy.SubtypeSkill:
		return ".claude/skills/" + slug + "/SKILL.md"
	case taxonomy.SubtypeSlashCommand:
		return ".claude/commands/" + slug + ".md"
	case taxonomy.SubtypeHook:
		return ".claude/hooks/" + slug + ".md"
	default:
		return "CLAUDE.md"
	}
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
