package canonical

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// sectionEnvelope is the JSON wire shape of a section: the variant's fields
// flattened alongside a "type" tag.
type sectionEnvelope struct {
	Type SectionKind `json:"type"`

	// metadata
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	Version     string            `json:"version,omitempty"`
	Author      string            `json:"author,omitempty"`
	SideData    map[string]string `json:"sideData,omitempty"`

	// instructions / context
	Text     string `json:"text,omitempty"`
	Priority string `json:"priority,omitempty"`

	// rules
	Ordered bool   `json:"ordered,omitempty"`
	Rules   []Rule `json:"rules,omitempty"`

	// examples
	Examples []Example `json:"examples,omitempty"`

	// persona
	Name      string   `json:"name,omitempty"`
	Role      string   `json:"role,omitempty"`
	Style     []string `json:"style,omitempty"`
	Expertise []string `json:"expertise,omitempty"`

	// tools
	Tools []string `json:"tools,omitempty"`

	// custom
	Content    string `json:"content,omitempty"`
	EditorType string `json:"editorType,omitempty"`
}

// MarshalJSON encodes the content with a "type" tag per section so the
// canonical form itself has a stable serialized representation.
func (c Content) MarshalJSON() ([]byte, error) {
	type wire struct {
		Format   string            `json:"format"`
		Version  string            `json:"version"`
		Sections []sectionEnvelope `json:"sections"`
	}
	w := wire{Format: c.Format, Version: c.Version, Sections: make([]sectionEnvelope, 0, len(c.Sections))}
	for _, s := range c.Sections {
		var env sectionEnvelope
		env.Type = s.Kind()
		switch v := s.(type) {
		case *MetadataSection:
			env.Title, env.Description, env.Icon = v.Title, v.Description, v.Icon
			env.Version, env.Author, env.SideData = v.Version, v.Author, v.SideData
		case *InstructionsSection:
			env.Title, env.Text, env.Priority = v.Title, v.Text, v.Priority
		case *RulesSection:
			env.Title, env.Ordered, env.Rules = v.Title, v.Ordered, v.Rules
		case *ExamplesSection:
			env.Title, env.Examples = v.Title, v.Examples
		case *ContextSection:
			env.Title, env.Text = v.Title, v.Text
		case *PersonaSection:
			env.Name, env.Role, env.Style, env.Expertise = v.Name, v.Role, v.Style, v.Expertise
		case *ToolsSection:
			env.Tools = v.Tools
		case *CustomSection:
			env.Content, env.EditorType = v.Content, v.EditorType
		default:
			return nil, errors.Newf("unknown section kind %q", s.Kind())
		}
		w.Sections = append(w.Sections, env)
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes content produced by MarshalJSON.
func (c *Content) UnmarshalJSON(data []byte) error {
	type wire struct {
		Format   string            `json:"format"`
		Version  string            `json:"version"`
		Sections []sectionEnvelope `json:"sections"`
	}
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.Format = w.Format
	c.Version = w.Version
	c.Sections = make([]Section, 0, len(w.Sections))
	for _, env := range w.Sections {
		s, err := env.section()
		if err != nil {
			return err
		}
		c.Sections = append(c.Sections, s)
	}
	return nil
}

func (env sectionEnvelope) section() (Section, error) {
	switch env.Type {
	case KindMetadata:
		return &MetadataSection{
			Title: env.Title, Description: env.Description, Icon: env.Icon,
			Version: env.Version, Author: env.Author, SideData: env.SideData,
		}, nil
	case KindInstructions:
		return &InstructionsSection{Title: env.Title, Text: env.Text, Priority: env.Priority}, nil
	case KindRules:
		return &RulesSection{Title: env.Title, Ordered: env.Ordered, Rules: env.Rules}, nil
	case KindExamples:
		return &ExamplesSection{Title: env.Title, Examples: env.Examples}, nil
	case KindContext:
		return &ContextSection{Title: env.Title, Text: env.Text}, nil
	case KindPersona:
		return &PersonaSection{Name: env.Name, Role: env.Role, Style: env.Style, Expertise: env.Expertise}, nil
	case KindTools:
		return &ToolsSection{Tools: env.Tools}, nil
	case KindCustom:
		return &CustomSection{Content: env.Content, EditorType: env.EditorType}, nil
	default:
		return nil, errors.Newf("unknown section type %q", env.Type)
	}
}

// Snapshot is the serializable view of a package, including its taxonomy.
type Snapshot struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Version  string            `json:"version,omitempty"`
	Author   string            `json:"author,omitempty"`
	Format   Format            `json:"format,omitempty"`
	Subtype  Subtype           `json:"subtype,omitempty"`
	Tags     []string          `json:"tags,omitempty"`
	SideData map[string]string `json:"sideData,omitempty"`
	Content  Content           `json:"content"`
}

// Snapshot returns the serializable view of the package.
func (p *Package) Snapshot() Snapshot {
	return Snapshot{
		ID:       p.ID,
		Name:     p.Name,
		Version:  p.Version,
		Author:   p.Author,
		Format:   p.format,
		Subtype:  p.subtype,
		Tags:     p.Tags,
		SideData: p.SideData,
		Content:  p.Content,
	}
}
