// Package cursor imports Cursor rule files: modern .mdc files with
// optional description/globs/alwaysApply frontmatter, and legacy
// .cursorrules plain markdown.
package cursor

import (
	"strconv"
	"strings"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/importer"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/pkg/frontmatter"
)

// Matter is the .mdc frontmatter contract.
type Matter struct {
	Description string   `yaml:"description,omitempty"`
	Globs       []string `yaml:"globs,omitempty"`
	AlwaysApply *bool    `yaml:"alwaysApply,omitempty"`
}

// Importer converts Cursor rule files to canonical packages.
type Importer struct{}

// New returns a Cursor importer.
func New() *Importer { return &Importer{} }

// Format returns the cursor dialect tag.
func (*Importer) Format() canonical.Format { return taxonomy.FormatCursor }

// Import parses a Cursor rules document. Frontmatter fields ride the side
// channel; the body is structurally segmented either way.
func (i *Importer) Import(raw []byte, src canonical.Source) (*canonical.Package, error) {
	var matter Matter
	body, err := frontmatter.Parse(raw, &matter)
	if err != nil {
		return nil, importer.NewStructuralError("cursor", "", "malformed frontmatter: "+err.Error())
	}

	side := map[string]string{}
	if len(matter.Globs) > 0 {
		side["globs"] = strings.Join(matter.Globs, ", ")
	}
	if matter.AlwaysApply != nil {
		side["alwaysApply"] = strconv.FormatBool(*matter.AlwaysApply)
	}
	if len(side) == 0 {
		side = nil
	}

	doc := importer.Segment(string(body), importer.SegmentOptions{})
	if doc.Description == "" && matter.Description != "" {
		doc.Description = matter.Description
	}

	pkg := importer.Build(src, doc, side, string(body))
	if err := taxonomy.Assign(pkg, taxonomy.FormatCursor, taxonomy.SubtypeRule); err != nil {
		return nil, err
	}
	return pkg, nil
}
