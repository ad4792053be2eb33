// Package windsurf imports Windsurf rule files: markdown with an optional
// trigger/globs frontmatter block.
package windsurf

import (
	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/importer"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/pkg/frontmatter"
)

// Importer converts Windsurf rule files to canonical packages.
type Importer struct{}

// New returns a Windsurf importer.
func New() *Importer { return &Importer{} }

// Format returns the windsurf dialect tag.
func (*Importer) Format() canonical.Format { return taxonomy.FormatWindsurf }

// Import parses a Windsurf rules document. Any frontmatter fields are
// captured wholesale into the side channel; none are interpreted.
func (i *Importer) Import(raw []byte, src canonical.Source) (*canonical.Package, error) {
	side, body, err := frontmatter.ParseMap(raw)
	if err != nil {
		return nil, importer.NewStructuralError("windsurf", "", "malformed frontmatter: "+err.Error())
	}

	doc := importer.Segment(string(body), importer.SegmentOptions{})
	pkg := importer.Build(src, doc, side, string(body))
	if err := taxonomy.Assign(pkg, taxonomy.FormatWindsurf, taxonomy.SubtypeRule); err != nil {
		return nil, err
	}
	return pkg, nil
}
