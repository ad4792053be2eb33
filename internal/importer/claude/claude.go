// Package claude imports Claude configuration files: CLAUDE.md memory
// files (no frontmatter) and agent/skill definitions (frontmatter with
// name, description, optional tools and model).
package claude

import (
	"strings"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/importer"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/pkg/frontmatter"
)

// Matter is the Claude agent/skill frontmatter contract.
type Matter struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	Tools       string `yaml:"tools,omitempty"` // comma-separated list
	Model       string `yaml:"model,omitempty"`
}

// Importer converts Claude files to canonical packages.
type Importer struct{}

// New returns a Claude importer.
func New() *Importer { return &Importer{} }

// Format returns the claude dialect tag.
func (*Importer) Format() canonical.Format { return taxonomy.FormatClaude }

// Import parses a Claude document. Frontmatter is optional: memory files
// classify as rules, frontmatter-bearing definitions as agents. A tools
// list becomes a tools section; the model choice rides the side channel.
func (i *Importer) Import(raw []byte, src canonical.Source) (*canonical.Package, error) {
	var matter Matter
	body, err := frontmatter.Parse(raw, &matter)
	if err != nil {
		return nil, importer.NewStructuralError("claude", "", "malformed frontmatter: "+err.Error())
	}

	doc := importer.Segment(string(body), importer.SegmentOptions{})
	if doc.Title == "" && matter.Name != "" {
		doc.Title = matter.Name
	}
	if doc.Description == "" && matter.Description != "" {
		doc.Description = matter.Description
	}

	var side map[string]string
	if matter.Model != "" {
		side = map[string]string{"model": matter.Model}
	}

	pkg := importer.Build(src, doc, side, string(body))

	if tools := splitTools(matter.Tools); len(tools) > 0 {
		pkg.Content.Sections = append(pkg.Content.Sections, &canonical.ToolsSection{Tools: tools})
	}

	subtype := taxonomy.SubtypeRule
	if matter.Name != "" {
		subtype = taxonomy.SubtypeAgent
	}
	if err := taxonomy.Assign(pkg, taxonomy.FormatClaude, subtype); err != nil {
		return nil, err
	}
	return pkg, nil
}

func splitTools(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	tools := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tools = append(tools, p)
		}
	}
	return tools
}
