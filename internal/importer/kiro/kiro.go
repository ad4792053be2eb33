// Package kiro imports Kiro steering files. The dialect mandates a
// frontmatter block with an inclusion mode; fileMatch inclusion also
// requires a match pattern. Both absences fail fast.
package kiro

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/importer"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/pkg/frontmatter"
)

// Inclusion modes recognized by Kiro.
const (
	InclusionAlways    = "always"
	InclusionManual    = "manual"
	InclusionFileMatch = "fileMatch"
)

// Matter is the Kiro steering-file frontmatter contract.
type Matter struct {
	Inclusion        string `yaml:"inclusion"`
	FileMatchPattern string `yaml:"fileMatchPattern,omitempty"`
	Domain           string `yaml:"domain,omitempty"`
}

// Importer converts Kiro steering files to canonical packages.
type Importer struct{}

// New returns a Kiro importer.
func New() *Importer { return &Importer{} }

// Format returns the kiro dialect tag.
func (*Importer) Format() canonical.Format { return taxonomy.FormatKiro }

// Import parses a steering file. Frontmatter and the inclusion field are
// required; inclusion "fileMatch" additionally requires fileMatchPattern.
func (i *Importer) Import(raw []byte, src canonical.Source) (*canonical.Package, error) {
	var matter Matter
	body, err := frontmatter.MustParse(raw, &matter)
	if err != nil {
		switch {
		case errors.Is(err, frontmatter.ErrMissingFrontmatter):
			return nil, importer.NewStructuralError("kiro", "", "frontmatter block is required for steering files")
		case errors.Is(err, frontmatter.ErrUnclosedFrontmatter):
			return nil, importer.NewStructuralError("kiro", "", "frontmatter block is not closed")
		default:
			return nil, importer.NewStructuralError("kiro", "", "malformed frontmatter: "+err.Error())
		}
	}

	switch matter.Inclusion {
	case InclusionAlways, InclusionManual:
	case InclusionFileMatch:
		if matter.FileMatchPattern == "" {
			return nil, importer.NewStructuralError("kiro", "fileMatchPattern",
				"required when inclusion is fileMatch")
		}
	case "":
		return nil, importer.NewStructuralError("kiro", "inclusion", "inclusion mode is required")
	default:
		return nil, importer.NewStructuralError("kiro", "inclusion",
			"unrecognized inclusion mode "+matter.Inclusion)
	}

	domain := matter.Domain
	if domain == "" {
		domain = inferDomain(src.Name)
	}

	side := map[string]string{"inclusion": matter.Inclusion}
	if matter.FileMatchPattern != "" {
		side["fileMatchPattern"] = matter.FileMatchPattern
	}
	if domain != "" {
		side["domain"] = domain
	}

	doc := importer.Segment(string(body), importer.SegmentOptions{})
	pkg := importer.Build(src, doc, side, string(body))
	if err := taxonomy.Assign(pkg, taxonomy.FormatKiro, taxonomy.SubtypeSteering); err != nil {
		return nil, err
	}
	return pkg, nil
}

// inferDomain derives a steering domain from the source file name when the
// frontmatter carries none: base name, extension stripped.
func inferDomain(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
