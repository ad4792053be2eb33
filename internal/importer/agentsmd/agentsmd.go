// Package agentsmd imports AGENTS.md files, the cross-tool instruction
// format. No frontmatter; the markdown body is structurally segmented.
package agentsmd

import (
	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/importer"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

// Importer converts AGENTS.md files to canonical packages.
type Importer struct{}

// New returns an agents.md importer.
func New() *Importer { return &Importer{} }

// Format returns the agentsmd dialect tag.
func (*Importer) Format() canonical.Format { return taxonomy.FormatAgentsMD }

// Import segments the markdown body.
func (i *Importer) Import(raw []byte, src canonical.Source) (*canonical.Package, error) {
	body := string(raw)
	doc := importer.Segment(body, importer.SegmentOptions{})
	pkg := importer.Build(src, doc, nil, body)
	if err := taxonomy.Assign(pkg, taxonomy.FormatAgentsMD, taxonomy.SubtypeRule); err != nil {
		return nil, err
	}
	return pkg, nil
}
