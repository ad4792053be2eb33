package exporter

import (
	"fmt"
	"strings"

	"github.com/rulebridge/rulebridge/internal/canonical"
)

// Capabilities parameterizes the shared markdown renderer for one dialect.
type Capabilities struct {
	// Dialect names the target in warnings.
	Dialect canonical.Format

	// Body lists the section kinds rendered into the markdown body.
	Body map[canonical.SectionKind]bool

	// Consumed lists kinds the exporter represents outside the body
	// (typically frontmatter). The renderer skips them silently; anything
	// in neither map is skipped with a lossy warning.
	Consumed map[canonical.SectionKind]bool
}

// MarkdownBody is the default body capability set: every prose-shaped kind
// plus custom blocks; persona and tools stay dialect-specific.
func MarkdownBody() map[canonical.SectionKind]bool {
	return map[canonical.SectionKind]bool{
		canonical.KindMetadata:     true,
		canonical.KindInstructions: true,
		canonical.KindRules:        true,
		canonical.KindExamples:     true,
		canonical.KindContext:      true,
		canonical.KindCustom:       true,
	}
}

// Render walks the package's sections in order and produces the markdown
// body plus warnings for every section the dialect cannot represent.
func Render(pkg *canonical.Package, caps Capabilities) (string, []string) {
	var (
		blocks   []string
		warnings []string
	)

	for _, section := range pkg.Content.Sections {
		kind := section.Kind()
		if !caps.Body[kind] {
			if !caps.Consumed[kind] {
				warnings = append(warnings,
					fmt.Sprintf("%s section skipped (not supported by %s)", kind, caps.Dialect))
			}
			continue
		}

		if block := renderSection(section); block != "" {
			blocks = append(blocks, block)
		}
	}

	return strings.Join(blocks, "\n\n"), warnings
}

func renderSection(section canonical.Section) string {
	switch v := section.(type) {
	case *canonical.MetadataSection:
		return renderMetadata(v)
	case *canonical.InstructionsSection:
		return renderTitled(v.Title, v.Text)
	case *canonical.RulesSection:
		return renderRules(v)
	case *canonical.ExamplesSection:
		return renderExamples(v)
	case *canonical.ContextSection:
		return renderTitled(v.Title, v.Text)
	case *canonical.PersonaSection:
		return renderPersona(v)
	case *canonical.ToolsSection:
		return renderTools(v)
	case *canonical.CustomSection:
		return strings.TrimSpace(v.Content)
	default:
		return ""
	}
}

func renderMetadata(m *canonical.MetadataSection) string {
	var sb strings.Builder
	if m.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(m.Title)
	}
	if m.Description != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(m.Description)
	}
	return sb.String()
}

func renderTitled(title, text string) string {
	text = strings.TrimSpace(text)
	if title == "" {
		return text
	}
	if text == "" {
		return "## " + title
	}
	return "## " + title + "\n\n" + text
}

// renderRules emits each rule as a list item, with rationale and inline
// examples as indented sub-bullets directly below it. The association
// survives in plain text without any nested structure in the output.
func renderRules(r *canonical.RulesSection) string {
	var sb strings.Builder
	if r.Title != "" {
		sb.WriteString("## ")
		sb.WriteString(r.Title)
		sb.WriteString("\n\n")
	}
	for i, rule := range r.Rules {
		if r.Ordered {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, rule.Content)
		} else {
			fmt.Fprintf(&sb, "- %s\n", rule.Content)
		}
		if rule.Rationale != "" {
			fmt.Fprintf(&sb, "  - Rationale: %s\n", rule.Rationale)
		}
		for _, ex := range rule.Examples {
			fmt.Fprintf(&sb, "  - Example: `%s`\n", ex)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderExamples emits a heading per example with good/bad/neutral framing
// followed by a language-tagged code fence.
func renderExamples(e *canonical.ExamplesSection) string {
	var sb strings.Builder
	if e.Title != "" {
		sb.WriteString("## ")
		sb.WriteString(e.Title)
		sb.WriteString("\n\n")
	}
	for i, ex := range e.Examples {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(exampleHeading(ex))
		sb.WriteString("\n\n```")
		sb.WriteString(ex.Language)
		sb.WriteString("\n")
		sb.WriteString(ex.Code)
		sb.WriteString("\n```\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func exampleHeading(ex canonical.Example) string {
	desc := ex.Description
	if desc == "" {
		desc = "Example"
	}
	switch {
	case ex.Good != nil && !*ex.Good:
		return "### Avoid: " + desc
	case ex.Good != nil && *ex.Good:
		return "### Preferred: " + desc
	default:
		return "### " + desc
	}
}

func renderPersona(p *canonical.PersonaSection) string {
	var sb strings.Builder
	sb.WriteString("## Persona\n\n")
	if p.Name != "" {
		fmt.Fprintf(&sb, "You are %s, %s.\n", p.Name, p.Role)
	} else {
		fmt.Fprintf(&sb, "You are %s.\n", p.Role)
	}
	if len(p.Style) > 0 {
		fmt.Fprintf(&sb, "\nStyle: %s.\n", strings.Join(p.Style, ", "))
	}
	if len(p.Expertise) > 0 {
		fmt.Fprintf(&sb, "\nExpertise: %s.\n", strings.Join(p.Expertise, ", "))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderTools(t *canonical.ToolsSection) string {
	if len(t.Tools) == 0 {
		return ""
	}
	return "## Tools\n\n" + strings.Join(t.Tools, ", ")
}
