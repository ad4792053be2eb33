package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rulebridge/rulebridge/internal/canonical"
)

func TestSegment_TitleAndDescription(t *testing.T) {
	body := "# API Guidelines\n\nConventions for service endpoints.\n\n## Naming\n\nUse nouns for resources.\n"

	doc := Segment(body, SegmentOptions{})

	if doc.Title != "API Guidelines" {
		t.Errorf("Title = %q, want %q", doc.Title, "API Guidelines")
	}
	if doc.Description != "Conventions for service endpoints." {
		t.Errorf("Description = %q", doc.Description)
	}
	require.Len(t, doc.Sections, 1)
	inst, ok := doc.Sections[0].(*canonical.InstructionsSection)
	require.True(t, ok, "section should be instructions, got %T", doc.Sections[0])
	if inst.Title != "Naming" {
		t.Errorf("section title = %q, want %q", inst.Title, "Naming")
	}
}

func TestSegment_HeadedListBecomesRules(t *testing.T) {
	body := "# Testing Rules\n\n- Always write tests\n- Use strict typing\n"

	doc := Segment(body, SegmentOptions{})

	require.Len(t, doc.Sections, 1)
	rules, ok := doc.Sections[0].(*canonical.RulesSection)
	require.True(t, ok, "section should be rules, got %T", doc.Sections[0])
	require.Len(t, rules.Rules, 2)
	if rules.Rules[0].Content != "Always write tests" {
		t.Errorf("first rule = %q", rules.Rules[0].Content)
	}
	if rules.Rules[1].Content != "Use strict typing" {
		t.Errorf("second rule = %q", rules.Rules[1].Content)
	}
	if rules.Ordered {
		t.Error("bulleted list should not be ordered")
	}
}

func TestSegment_NumberedRulesAreOrdered(t *testing.T) {
	body := "## Conventions\n\n1. First rule\n2. Second rule\n"

	doc := Segment(body, SegmentOptions{})

	require.Len(t, doc.Sections, 1)
	rules, ok := doc.Sections[0].(*canonical.RulesSection)
	require.True(t, ok)
	if !rules.Ordered {
		t.Error("numbered list should be ordered")
	}
	require.Len(t, rules.Rules, 2)
	if rules.Rules[0].Content != "First rule" {
		t.Errorf("rule content = %q, marker not stripped", rules.Rules[0].Content)
	}
}

func TestSegment_RuleContinuations(t *testing.T) {
	body := `## Error Handling Rules

- Wrap errors with context
  - Rationale: stack traces alone don't explain intent
  - Example: ` + "`errors.Wrap(err, \"loading config\")`" + `
- Never ignore returned errors
  - Why: silent failures are unfindable
`

	doc := Segment(body, SegmentOptions{})

	require.Len(t, doc.Sections, 1)
	rules, ok := doc.Sections[0].(*canonical.RulesSection)
	require.True(t, ok)
	require.Len(t, rules.Rules, 2)

	first := rules.Rules[0]
	if first.Rationale != "stack traces alone don't explain intent" {
		t.Errorf("Rationale = %q", first.Rationale)
	}
	require.Len(t, first.Examples, 1)
	if first.Examples[0] != `errors.Wrap(err, "loading config")` {
		t.Errorf("Example = %q", first.Examples[0])
	}

	if rules.Rules[1].Rationale != "silent failures are unfindable" {
		t.Errorf("Why: continuation not captured, Rationale = %q", rules.Rules[1].Rationale)
	}
}

func TestSegment_ExamplesWithFraming(t *testing.T) {
	body := "## Examples\n\n### Avoid: mutable globals\n\n```go\nvar state = map[string]int{}\n```\n\n### Preferred: explicit dependencies\n\n```go\ntype Server struct{ store Store }\n```\n"

	doc := Segment(body, SegmentOptions{})

	require.Len(t, doc.Sections, 1)
	ex, ok := doc.Sections[0].(*canonical.ExamplesSection)
	require.True(t, ok, "section should be examples, got %T", doc.Sections[0])
	require.Len(t, ex.Examples, 2)

	bad := ex.Examples[0]
	require.NotNil(t, bad.Good)
	if *bad.Good {
		t.Error("Avoid example should be Good=false")
	}
	if bad.Description != "mutable globals" {
		t.Errorf("framing word not trimmed: %q", bad.Description)
	}
	if bad.Language != "go" {
		t.Errorf("Language = %q", bad.Language)
	}
	if bad.Code != "var state = map[string]int{}" {
		t.Errorf("Code = %q", bad.Code)
	}

	good := ex.Examples[1]
	require.NotNil(t, good.Good)
	if !*good.Good {
		t.Error("Preferred example should be Good=true")
	}
}

func TestSegment_ProseThenListIsInstructions(t *testing.T) {
	// The lookahead sees only the first non-blank line after the heading.
	// Prose first means instructions, even when a list follows later.
	body := "## Deployment\n\nShip behind a feature flag.\n\n- Check dashboards after rollout\n"

	doc := Segment(body, SegmentOptions{})

	require.Len(t, doc.Sections, 1)
	if _, ok := doc.Sections[0].(*canonical.InstructionsSection); !ok {
		t.Errorf("prose-then-list section should be instructions, got %T", doc.Sections[0])
	}
}

func TestSegment_FenceShieldsStructure(t *testing.T) {
	// Headings and list markers inside a code fence must not be parsed.
	body := "## Setup\n\nRun the generator:\n\n```sh\n# this is a comment, not a heading\n- not a list item\n```\n"

	doc := Segment(body, SegmentOptions{})

	require.Len(t, doc.Sections, 1)
	inst, ok := doc.Sections[0].(*canonical.InstructionsSection)
	require.True(t, ok, "got %T", doc.Sections[0])
	if !strings.Contains(inst.Text, "# this is a comment, not a heading") {
		t.Errorf("fenced content lost:\n%s", inst.Text)
	}
}

func TestSegment_UnterminatedFence(t *testing.T) {
	body := "## Snippet\n\n```go\nfunc main() {}\n"

	doc := Segment(body, SegmentOptions{})

	require.Len(t, doc.Sections, 1)
	// "Snippet" matches the examples keyword, so the recovered fence
	// becomes an example.
	ex, ok := doc.Sections[0].(*canonical.ExamplesSection)
	require.True(t, ok, "got %T", doc.Sections[0])
	require.Len(t, ex.Examples, 1)
	if ex.Examples[0].Code != "func main() {}" {
		t.Errorf("Code = %q", ex.Examples[0].Code)
	}
}

func TestSegment_KindHintOverridesHeuristics(t *testing.T) {
	body := "## Whatever\n\nSome prose that would otherwise be instructions.\n"

	doc := Segment(body, SegmentOptions{KindHint: canonical.KindContext})

	require.Len(t, doc.Sections, 1)
	if _, ok := doc.Sections[0].(*canonical.ContextSection); !ok {
		t.Errorf("hinted section should be context, got %T", doc.Sections[0])
	}
}

func TestSegment_EmptyRulesSectionDegrades(t *testing.T) {
	// A heading classified as rules that yields no list items must not
	// produce an empty rules shell.
	body := "## Coding Standards\n\nWe have none yet.\n"

	doc := Segment(body, SegmentOptions{})

	require.Len(t, doc.Sections, 1)
	if _, ok := doc.Sections[0].(*canonical.InstructionsSection); !ok {
		t.Errorf("empty rules section should degrade to instructions, got %T", doc.Sections[0])
	}
}

func TestSegment_PreambleBeforeHeading(t *testing.T) {
	body := "Use tabs for indentation.\n\n## Details\n\nMore text.\n"

	doc := Segment(body, SegmentOptions{})

	require.Len(t, doc.Sections, 2)
	first, ok := doc.Sections[0].(*canonical.InstructionsSection)
	require.True(t, ok)
	if first.Title != "" {
		t.Errorf("preamble section should be untitled, got %q", first.Title)
	}
	if first.Text != "Use tabs for indentation." {
		t.Errorf("preamble text = %q", first.Text)
	}
}

func TestSegment_MultipleSectionsKeepOrder(t *testing.T) {
	body := `# Project Memory

Team conventions.

## Overview

A service mesh control plane.

## Rules

- Pin dependency versions

## Examples

` + "```yaml\nreplicas: 3\n```" + `
`

	doc := Segment(body, SegmentOptions{})

	require.Len(t, doc.Sections, 3)
	wantKinds := []canonical.SectionKind{canonical.KindContext, canonical.KindRules, canonical.KindExamples}
	for i, want := range wantKinds {
		if got := doc.Sections[i].Kind(); got != want {
			t.Errorf("section %d kind = %s, want %s", i, got, want)
		}
	}
}
