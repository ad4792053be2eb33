// Package aider imports Aider convention files (CONVENTIONS.md): plain
// markdown with no frontmatter. The body is structurally segmented so
// rules and examples survive a round trip through other dialects; freeform
// prose still degrades to a single instructions section.
package aider

import (
	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/importer"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

// Importer converts Aider convention files to canonical packages.
type Importer struct{}

// New returns an Aider importer.
func New() *Importer { return &Importer{} }

// Format returns the aider dialect tag.
func (*Importer) Format() canonical.Format { return taxonomy.FormatAider }

// Import segments the markdown body.
func (i *Importer) Import(raw []byte, src canonical.Source) (*canonical.Package, error) {
	body := string(raw)
	doc := importer.Segment(body, importer.SegmentOptions{})
	pkg := importer.Build(src, doc, nil, body)
	if err := taxonomy.Assign(pkg, taxonomy.FormatAider, taxonomy.SubtypeRule); err != nil {
		return nil, err
	}
	return pkg, nil
}
