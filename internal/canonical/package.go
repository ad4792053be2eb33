package canonical

import (
	"github.com/cockroachdb/errors"
)

// ContentFormat and ContentVersion identify the canonical content schema.
const (
	ContentFormat  = "canonical"
	ContentVersion = "1.0"
)

// Format tags a dialect. The valid set lives in the taxonomy package.
type Format string

// Subtype tags a package's functional role (rule, agent, skill, ...).
// The valid set lives in the taxonomy package.
type Subtype string

// Source is the metadata record supplied by whoever located the raw
// document (publish pipeline, CLI, scraper).
type Source struct {
	ID      string
	Name    string
	Version string
	Author  string
	Tags    []string
}

// Content is the canonical body: an ordered sequence of sections.
type Content struct {
	Format   string
	Version  string
	Sections []Section
}

// NewContent returns a Content with the canonical schema tags set.
func NewContent(sections []Section) Content {
	return Content{
		Format:   ContentFormat,
		Version:  ContentVersion,
		Sections: sections,
	}
}

// Package is the dialect-independent representation of one configuration
// file. It is created by an importer and read-only afterwards, except for
// the single AssignTaxonomy step.
type Package struct {
	ID      string
	Name    string
	Version string
	Author  string
	Tags    []string

	// SideData carries dialect-specific fields needed purely for
	// round-tripping. Exporters for other dialects never interpret it
	// except to warn that it cannot be represented.
	SideData map[string]string

	Content Content

	format  Format
	subtype Subtype
}

// New builds a package from source metadata and canonical content.
// Taxonomy is unset until AssignTaxonomy is called.
func New(src Source, content Content) *Package {
	return &Package{
		ID:      src.ID,
		Name:    src.Name,
		Version: src.Version,
		Author:  src.Author,
		Tags:    src.Tags,
		Content: content,
	}
}

// Taxonomy assignment errors.
var (
	ErrTaxonomyIncomplete = errors.New("format and subtype must be set together")
	ErrTaxonomyReassigned = errors.New("taxonomy already assigned")
)

// AssignTaxonomy sets the (format, subtype) pair. It is the only writer of
// the pair: both values must be non-empty, and a second call is legal only
// with identical arguments. Validation of the values themselves is the
// taxonomy package's job; importers go through taxonomy.Assign rather than
// calling this directly.
func (p *Package) AssignTaxonomy(format Format, subtype Subtype) error {
	if format == "" || subtype == "" {
		return errors.Wrapf(ErrTaxonomyIncomplete, "got format=%q subtype=%q", format, subtype)
	}
	if p.format != "" || p.subtype != "" {
		if p.format == format && p.subtype == subtype {
			return nil
		}
		return errors.Wrapf(ErrTaxonomyReassigned,
			"have (%s, %s), got (%s, %s)", p.format, p.subtype, format, subtype)
	}
	p.format = format
	p.subtype = subtype
	return nil
}

// Format returns the assigned dialect tag, or "" if unassigned.
func (p *Package) Format() Format { return p.format }

// Subtype returns the assigned functional role, or "" if unassigned.
func (p *Package) Subtype() Subtype { return p.subtype }

// Classified reports whether the taxonomy pair has been assigned.
func (p *Package) Classified() bool { return p.format != "" && p.subtype != "" }

// Metadata returns the package's metadata section, or nil if none exists.
func (p *Package) Metadata() *MetadataSection {
	for _, s := range p.Content.Sections {
		if m, ok := s.(*MetadataSection); ok {
			return m
		}
	}
	return nil
}
