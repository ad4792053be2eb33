// Package trae imports Trae rule files: plain markdown with no
// frontmatter. The body is structurally segmented so rules and examples
// survive a round trip through other dialects.
package trae

import (
	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/importer"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

// Importer converts Trae rule files to canonical packages.
type Importer struct{}

// New returns a Trae importer.
func New() *Importer { return &Importer{} }

// Format returns the trae dialect tag.
func (*Importer) Format() canonical.Format { return taxonomy.FormatTrae }

// Import segments the markdown body.
func (i *Importer) Import(raw []byte, src canonical.Source) (*canonical.Package, error) {
	body := string(raw)
	doc := importer.Segment(body, importer.SegmentOptions{})
	pkg := importer.Build(src, doc, nil, body)
	if err := taxonomy.Assign(pkg, taxonomy.FormatTrae, taxonomy.SubtypeRule); err != nil {
		return nil, err
	}
	return pkg, nil
}
