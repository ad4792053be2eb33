// Package importer converts dialect text into canonical packages.
//
// Structural segmentation runs a line scanner over the markdown body,
// splitting it into typed sections using heading heuristics (see
// [InferKind]); a body with no recognizable structure degrades to a single
// instructions section. Dialect subpackages apply their frontmatter
// contract, segment the body, and classify the result through the taxonomy
// package.
package importer

import (
	"strings"

	"github.com/rulebridge/rulebridge/internal/canonical"
)

// Importer converts one dialect's raw text into a canonical package.
// Implementations are pure functions of their input: no I/O, no shared
// mutable state, safe for concurrent use.
type Importer interface {
	// Format returns the dialect tag this importer handles.
	Format() canonical.Format

	// Import parses raw into a canonical package. Structural failures
	// (dialect-mandated frontmatter missing or invalid) return a
	// *StructuralError; callers must treat them as hard failures and not
	// persist a partially built package.
	Import(raw []byte, src canonical.Source) (*canonical.Package, error)
}

// Build assembles the canonical package for a segmented document. The
// document title and description feed a synthesized metadata section, along
// with any dialect side-channel fields. If segmentation produced no body
// sections, one instructions section holding the trimmed raw body is
// synthesized so content is never empty.
func Build(src canonical.Source, doc *Document, sideData map[string]string, rawBody string) *canonical.Package {
	var sections []canonical.Section

	if doc.Title != "" || doc.Description != "" || len(sideData) > 0 {
		sections = append(sections, &canonical.MetadataSection{
			Title:       doc.Title,
			Description: doc.Description,
			Author:      src.Author,
			Version:     src.Version,
			SideData:    sideData,
		})
	}
	sections = append(sections, doc.Sections...)

	if len(doc.Sections) == 0 {
		sections = append(sections, &canonical.InstructionsSection{
			Text: strings.TrimSpace(rawBody),
		})
	}

	pkg := canonical.New(src, canonical.NewContent(sections))
	if len(pkg.Tags) == 0 {
		pkg.Tags = InferTags(rawBody)
	}
	if len(sideData) > 0 {
		pkg.SideData = sideData
	}
	return pkg
}
