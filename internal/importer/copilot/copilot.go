// Package copilot imports GitHub Copilot instruction files. Repository-wide
// instructions carry no frontmatter; path-specific instruction files may
// declare applyTo glob patterns.
package copilot

import (
	"strings"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/importer"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/pkg/frontmatter"
)

// Matter is the optional Copilot frontmatter contract.
type Matter struct {
	ApplyTo []string `yaml:"applyTo,omitempty"`
}

// Importer converts Copilot instruction files to canonical packages.
type Importer struct{}

// New returns a Copilot importer.
func New() *Importer { return &Importer{} }

// Format returns the copilot dialect tag.
func (*Importer) Format() canonical.Format { return taxonomy.FormatCopilot }

// Import parses a Copilot instructions document. applyTo patterns ride the
// side channel so a path-specific re-export can restore them.
func (i *Importer) Import(raw []byte, src canonical.Source) (*canonical.Package, error) {
	var matter Matter
	body, err := frontmatter.Parse(raw, &matter)
	if err != nil {
		return nil, importer.NewStructuralError("copilot", "", "malformed frontmatter: "+err.Error())
	}

	var side map[string]string
	if len(matter.ApplyTo) > 0 {
		side = map[string]string{"applyTo": strings.Join(matter.ApplyTo, ", ")}
	}

	doc := importer.Segment(string(body), importer.SegmentOptions{})
	pkg := importer.Build(src, doc, side, string(body))
	if err := taxonomy.Assign(pkg, taxonomy.FormatCopilot, taxonomy.SubtypeRule); err != nil {
		return nil, err
	}
	return pkg, nil
}
