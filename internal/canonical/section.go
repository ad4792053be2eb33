package canonical

// SectionKind identifies a section variant.
type SectionKind string

// Section variants.
const (
	KindMetadata     SectionKind = "metadata"
	KindInstructions SectionKind = "instructions"
	KindRules        SectionKind = "rules"
	KindExamples     SectionKind = "examples"
	KindContext      SectionKind = "context"
	KindPersona      SectionKind = "persona"
	KindTools        SectionKind = "tools"
	KindCustom       SectionKind = "custom"
)

// Section is one tagged block within a package's content. The set of
// implementations is closed: the unexported marker method keeps other
// packages from adding variants, so consumers can type-switch over the
// variants below and treat an unknown case as a programming error.
type Section interface {
	// Kind returns the variant tag.
	Kind() SectionKind

	section()
}

// MetadataSection carries document identity: title, description, and any
// dialect side-channel fields needed purely for round-tripping. It renders
// as a title or frontmatter, never as body prose. A package holds at most
// one metadata section.
type MetadataSection struct {
	Title       string
	Description string
	Icon        string
	Version     string
	Author      string

	// SideData holds dialect-specific fields (e.g. Droid's argument-hint)
	// that no other dialect interprets.
	SideData map[string]string
}

func (*MetadataSection) Kind() SectionKind { return KindMetadata }
func (*MetadataSection) section()          {}

// InstructionsSection is a free-form natural-language guidance block.
type InstructionsSection struct {
	Title    string
	Text     string
	Priority string
}

func (*InstructionsSection) Kind() SectionKind { return KindInstructions }
func (*InstructionsSection) section()          {}

// Rule is one directive within a rules section.
type Rule struct {
	Content   string
	Rationale string
	Examples  []string
}

// RulesSection is a directive list, optionally numbered.
type RulesSection struct {
	Title   string
	Ordered bool
	Rules   []Rule
}

func (*RulesSection) Kind() SectionKind { return KindRules }
func (*RulesSection) section()          {}

// Example is one illustrative snippet. Good distinguishes preferred from
// anti-pattern snippets; nil means neutral.
type Example struct {
	Description string
	Code        string
	Language    string
	Good        *bool
}

// ExamplesSection holds paired before/after or illustrative snippets.
type ExamplesSection struct {
	Title    string
	Examples []Example
}

func (*ExamplesSection) Kind() SectionKind { return KindExamples }
func (*ExamplesSection) section()          {}

// ContextSection holds background or project information.
type ContextSection struct {
	Title string
	Text  string
}

func (*ContextSection) Kind() SectionKind { return KindContext }
func (*ContextSection) section()          {}

// PersonaSection is role-play framing. Only Claude-family dialects render
// it; everywhere else it is skipped with a lossy warning.
type PersonaSection struct {
	Name      string
	Role      string
	Style     []string
	Expertise []string
}

func (*PersonaSection) Kind() SectionKind { return KindPersona }
func (*PersonaSection) section()          {}

// ToolsSection declares tool capabilities (Claude-specific).
type ToolsSection struct {
	Tools []string
}

func (*ToolsSection) Kind() SectionKind { return KindTools }
func (*ToolsSection) section()          {}

// CustomSection is the escape hatch for content no other variant supports.
type CustomSection struct {
	Content    string
	EditorType string
}

func (*CustomSection) Kind() SectionKind { return KindCustom }
func (*CustomSection) section()          {}

// Bool returns a pointer to b, for populating Example.Good.
func Bool(b bool) *bool { return &b }
