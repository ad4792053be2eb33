package importer

import (
	"regexp"
	"strings"

	"github.com/rulebridge/rulebridge/internal/canonical"
)

// Document is the result of structurally segmenting a markdown body.
// Title and Description feed the package's metadata section; Sections hold
// the typed body blocks in document order.
type Document struct {
	Title       string
	Description string
	Sections    []canonical.Section
}

// SegmentOptions tune the scanner.
type SegmentOptions struct {
	// KindHint forces the kind of every inferred section. Dialects whose
	// metadata declares the document's nature (e.g. a rules-only format)
	// set it; it takes priority over all heuristics.
	KindHint canonical.SectionKind
}

// inlineExamplePattern extracts the backtick-quoted token of an
// "Example: `...`" continuation line under a rule.
var inlineExamplePattern = regexp.MustCompile("`([^`]+)`")

// Segment runs the structural line scanner over a markdown body.
//
// A leading level-1 heading becomes the document title, and the first
// following paragraph (before any section heading) the description. Each
// level-2 heading starts a new section whose kind is decided by
// [InferKind]. A code-fence state machine keeps fenced content from being
// mis-read as headings or list items. The in-progress section is flushed
// whenever a heading of equal or higher level starts, and at end of input.
func Segment(body string, opts SegmentOptions) *Document {
	s := &segmenter{doc: &Document{}, hint: opts.KindHint}
	lines := strings.Split(body, "\n")

	for i := 0; i < len(lines); i++ {
		s.scan(lines[i], lines[i+1:])
	}
	s.flushFence() // unterminated fence: keep its lines as prose
	s.flush()
	return s.doc
}

type segmenter struct {
	doc  *Document
	hint canonical.SectionKind

	cur *sectionBuilder

	inCodeBlock bool
	fenceLang   string
	fenceLines  []string

	// pendingExample carries the description (and good/bad framing) of the
	// next fenced block inside an examples section.
	pendingExample *canonical.Example

	awaitingDescription bool
}

// sectionBuilder accumulates one section before it is flushed.
type sectionBuilder struct {
	kind    canonical.SectionKind
	title   string
	ordered bool
	text    []string
	rules   []canonical.Rule
	example []canonical.Example
}

func (s *segmenter) scan(line string, rest []string) {
	trimmed := strings.TrimSpace(line)

	// Fence state machine runs first so fenced content is never parsed as
	// structure.
	if s.inCodeBlock {
		if strings.HasPrefix(trimmed, "```") {
			s.closeFence()
			return
		}
		s.fenceLines = append(s.fenceLines, line)
		return
	}
	if strings.HasPrefix(trimmed, "```") {
		s.inCodeBlock = true
		s.fenceLang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
		s.fenceLines = nil
		return
	}

	switch {
	case strings.HasPrefix(trimmed, "# "):
		title := strings.TrimSpace(trimmed[2:])
		if s.doc.Title == "" && s.cur == nil {
			s.doc.Title = title
			s.awaitingDescription = true
			return
		}
		// A later level-1 heading starts a section like any other.
		s.startSection(title, rest)

	case strings.HasPrefix(trimmed, "## "):
		s.startSection(strings.TrimSpace(trimmed[3:]), rest)

	default:
		s.bodyLine(line, trimmed)
	}
}

func (s *segmenter) startSection(title string, rest []string) {
	s.flush()
	s.cur = &sectionBuilder{
		kind:  InferKind(title, rest, s.hint),
		title: title,
	}
	s.awaitingDescription = false
}

func (s *segmenter) bodyLine(line, trimmed string) {
	if s.awaitingDescription {
		if trimmed == "" {
			if s.doc.Description != "" {
				s.awaitingDescription = false
			}
			return
		}
		if !isListItem(trimmed) && !strings.HasPrefix(trimmed, "#") {
			if s.doc.Description == "" {
				s.doc.Description = trimmed
			} else {
				s.doc.Description += " " + trimmed
			}
			return
		}
		s.awaitingDescription = false
	}

	if s.cur == nil {
		if trimmed == "" {
			return
		}
		// Preamble before any section heading: a leading list item means an
		// untitled rules section, anything else untitled instructions.
		kind := s.hint
		if kind == "" {
			kind = canonical.KindInstructions
			if isListItem(trimmed) {
				kind = canonical.KindRules
			}
		}
		s.cur = &sectionBuilder{kind: kind}
	}

	switch s.cur.kind {
	case canonical.KindRules:
		s.ruleLine(line, trimmed)
	case canonical.KindExamples:
		s.exampleLine(trimmed)
	default:
		s.cur.text = append(s.cur.text, line)
	}
}

// ruleLine handles lines inside a rules section: top-level list items open
// a new rule, indented continuation lines attach rationale or an inline
// example to the rule above.
func (s *segmenter) ruleLine(line, trimmed string) {
	leading := len(line) - len(strings.TrimLeft(line, " \t"))
	indented := leading >= 2

	if isListItem(trimmed) && !indented {
		if trimmed[0] >= '0' && trimmed[0] <= '9' {
			s.cur.ordered = true
		}
		s.cur.rules = append(s.cur.rules, canonical.Rule{Content: stripListMarker(trimmed)})
		return
	}

	if indented && len(s.cur.rules) > 0 {
		rule := &s.cur.rules[len(s.cur.rules)-1]
		cont := stripListMarker(trimmed)
		switch {
		case strings.HasPrefix(cont, "Rationale:"):
			rule.Rationale = strings.TrimSpace(strings.TrimPrefix(cont, "Rationale:"))
			return
		case strings.HasPrefix(cont, "Why:"):
			rule.Rationale = strings.TrimSpace(strings.TrimPrefix(cont, "Why:"))
			return
		case strings.HasPrefix(cont, "Example:"):
			if m := inlineExamplePattern.FindStringSubmatch(cont); m != nil {
				rule.Examples = append(rule.Examples, m[1])
			}
			return
		}
		// Other indented continuation folds into the rule text.
		if cont != "" {
			rule.Content += " " + cont
		}
		return
	}

	if trimmed != "" {
		s.cur.text = append(s.cur.text, line)
	}
}

// exampleLine handles prose inside an examples section. A level-3 heading
// names the next example; its framing words decide good/bad classification.
func (s *segmenter) exampleLine(trimmed string) {
	if strings.HasPrefix(trimmed, "### ") {
		desc := strings.TrimSpace(trimmed[4:])
		ex := canonical.Example{Description: desc}
		lower := strings.ToLower(desc)
		switch {
		case strings.HasPrefix(lower, "avoid"), strings.HasPrefix(lower, "bad"), strings.HasPrefix(lower, "don't"):
			ex.Good = canonical.Bool(false)
			ex.Description = trimFraming(desc)
		case strings.HasPrefix(lower, "preferred"), strings.HasPrefix(lower, "good"):
			ex.Good = canonical.Bool(true)
			ex.Description = trimFraming(desc)
		}
		s.pendingExample = &ex
		return
	}
	if trimmed != "" {
		s.cur.text = append(s.cur.text, trimmed)
	}
}

// trimFraming drops the leading framing word ("Preferred:", "Avoid:") from
// an example heading, keeping the remainder as the description.
func trimFraming(desc string) string {
	if idx := strings.Index(desc, ":"); idx >= 0 {
		return strings.TrimSpace(desc[idx+1:])
	}
	return desc
}

// closeFence ends the open code fence. Attached to an examples section it
// appends an Example; anywhere else the fenced block stays raw prose.
func (s *segmenter) closeFence() {
	code := strings.Join(s.fenceLines, "\n")
	lang := s.fenceLang
	s.inCodeBlock = false
	s.fenceLang = ""
	s.fenceLines = nil

	if s.cur != nil && s.cur.kind == canonical.KindExamples {
		ex := canonical.Example{Code: code, Language: lang}
		if s.pendingExample != nil {
			ex.Description = s.pendingExample.Description
			ex.Good = s.pendingExample.Good
			s.pendingExample = nil
		}
		s.cur.example = append(s.cur.example, ex)
		return
	}

	if s.cur == nil {
		s.cur = &sectionBuilder{kind: canonical.KindInstructions}
	}
	fenced := "```" + lang + "\n" + code + "\n```"
	s.cur.text = append(s.cur.text, fenced)
}

// flushFence recovers from an unterminated fence at end of input. The final
// split leaves a phantom empty line after a trailing newline; a real closing
// fence would have absorbed it, so drop it here.
func (s *segmenter) flushFence() {
	if !s.inCodeBlock {
		return
	}
	for n := len(s.fenceLines); n > 0 && s.fenceLines[n-1] == ""; n = len(s.fenceLines) {
		s.fenceLines = s.fenceLines[:n-1]
	}
	s.closeFence()
}

// flush finalizes the in-progress section. A rules or examples section that
// collected no items degrades to instructions so no empty shells survive.
func (s *segmenter) flush() {
	b := s.cur
	s.cur = nil
	s.pendingExample = nil
	if b == nil {
		return
	}

	text := strings.TrimSpace(strings.Join(b.text, "\n"))

	switch b.kind {
	case canonical.KindRules:
		if len(b.rules) == 0 {
			if text == "" {
				return
			}
			s.doc.Sections = append(s.doc.Sections, &canonical.InstructionsSection{Title: b.title, Text: text})
			return
		}
		s.doc.Sections = append(s.doc.Sections, &canonical.RulesSection{
			Title:   b.title,
			Ordered: b.ordered,
			Rules:   b.rules,
		})
	case canonical.KindExamples:
		if len(b.example) == 0 {
			if text == "" {
				return
			}
			s.doc.Sections = append(s.doc.Sections, &canonical.InstructionsSection{Title: b.title, Text: text})
			return
		}
		s.doc.Sections = append(s.doc.Sections, &canonical.ExamplesSection{
			Title:    b.title,
			Examples: b.example,
		})
	case canonical.KindContext:
		if text == "" {
			return
		}
		s.doc.Sections = append(s.doc.Sections, &canonical.ContextSection{Title: b.title, Text: text})
	default:
		if text == "" && b.title == "" {
			return
		}
		s.doc.Sections = append(s.doc.Sections, &canonical.InstructionsSection{Title: b.title, Text: text})
	}
}
