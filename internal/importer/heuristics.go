package importer

import (
	"strings"

	"github.com/rulebridge/rulebridge/internal/canonical"
)

// sectionKeywords maps heading keywords to section kinds. Entries are
// checked in order, so an earlier kind wins when a heading matches several.
var sectionKeywords = []struct {
	kind  canonical.SectionKind
	words []string
}{
	{canonical.KindRules, []string{"rule", "convention", "standard", "guideline", "requirement", "practice"}},
	{canonical.KindExamples, []string{"example", "usage", "sample", "snippet"}},
	{canonical.KindContext, []string{"context", "overview", "background", "about"}},
}

// lookaheadWindow is how many following lines InferKind inspects when the
// heading text itself gives no signal.
const lookaheadWindow = 4

// InferKind decides the section kind for a heading. Priority order, fixed
// and tie-break free: an explicit hint wins, then a keyword match against
// the heading text, then a lookahead at the next few lines (list items mean
// rules, an opening code fence means examples), and finally the
// instructions default.
//
// The lookahead only sees the first non-blank line of the window: a heading
// whose first paragraph is prose followed later by a list classifies as
// instructions. That ambiguity is deliberate and covered by tests.
func InferKind(heading string, lookahead []string, hint canonical.SectionKind) canonical.SectionKind {
	if hint != "" {
		return hint
	}

	lower := strings.ToLower(heading)
	for _, entry := range sectionKeywords {
		for _, w := range entry.words {
			if strings.Contains(lower, w) {
				return entry.kind
			}
		}
	}

	if len(lookahead) > lookaheadWindow {
		lookahead = lookahead[:lookaheadWindow]
	}
	for _, line := range lookahead {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isListItem(trimmed) {
			return canonical.KindRules
		}
		if strings.HasPrefix(trimmed, "```") {
			return canonical.KindExamples
		}
		break
	}

	return canonical.KindInstructions
}

// isListItem reports whether a trimmed line opens a markdown list item,
// bulleted or numbered.
func isListItem(line string) bool {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "+ ") {
		return true
	}
	// Numbered: digits followed by ". " or ") ".
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(line) {
		return false
	}
	return (line[i] == '.' || line[i] == ')') && line[i+1] == ' '
}

// stripListMarker removes the leading bullet or number from a list item.
func stripListMarker(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	i := 0
	for i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(trimmed) && (trimmed[i] == '.' || trimmed[i] == ')') && trimmed[i+1] == ' ' {
		return strings.TrimSpace(trimmed[i+2:])
	}
	return trimmed
}
