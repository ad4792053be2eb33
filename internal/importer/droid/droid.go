// Package droid imports Factory Droid definition files. The frontmatter
// carries name, description, and the Droid-only argument-hint and
// allowed-tools fields, which ride the canonical side channel so a Droid
// re-export can restore them.
package droid

import (
	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/importer"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/pkg/frontmatter"
)

// Matter is the Droid frontmatter contract.
type Matter struct {
	Name         string `yaml:"name,omitempty"`
	Description  string `yaml:"description,omitempty"`
	ArgumentHint string `yaml:"argument-hint,omitempty"`
	AllowedTools string `yaml:"allowed-tools,omitempty"`
}

// Importer converts Droid files to canonical packages.
type Importer struct{}

// New returns a Droid importer.
func New() *Importer { return &Importer{} }

// Format returns the droid dialect tag.
func (*Importer) Format() canonical.Format { return taxonomy.FormatDroid }

// Import parses a Droid document. An argument-hint marks a slash command;
// anything else classifies as an agent.
func (i *Importer) Import(raw []byte, src canonical.Source) (*canonical.Package, error) {
	var matter Matter
	body, err := frontmatter.Parse(raw, &matter)
	if err != nil {
		return nil, importer.NewStructuralError("droid", "", "malformed frontmatter: "+err.Error())
	}

	doc := importer.Segment(string(body), importer.SegmentOptions{})
	if doc.Title == "" && matter.Name != "" {
		doc.Title = matter.Name
	}
	if doc.Description == "" && matter.Description != "" {
		doc.Description = matter.Description
	}

	side := map[string]string{}
	if matter.ArgumentHint != "" {
		side["argument-hint"] = matter.ArgumentHint
	}
	if matter.AllowedTools != "" {
		side["allowed-tools"] = matter.AllowedTools
	}
	if len(side) == 0 {
		side = nil
	}

	pkg := importer.Build(src, doc, side, string(body))

	subtype := taxonomy.SubtypeAgent
	if matter.ArgumentHint != "" {
		subtype = taxonomy.SubtypeSlashCommand
	}
	if err := taxonomy.Assign(pkg, taxonomy.FormatDroid, subtype); err != nil {
		return nil, err
	}
	return pkg, nil
}
