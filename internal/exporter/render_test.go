package exporter

import (
	"strings"
	"testing"

	"github.com/rulebridge/rulebridge/internal/canonical"
)

func pkgWith(sections ...canonical.Section) *canonical.Package {
	return canonical.New(canonical.Source{ID: "p", Name: "p"}, canonical.NewContent(sections))
}

func TestRender_RulesWithContinuations(t *testing.T) {
	pkg := pkgWith(&canonical.RulesSection{
		Title: "Error Handling",
		Rules: []canonical.Rule{
			{
				Content:   "Wrap errors with context",
				Rationale: "bare errors lose intent",
				Examples:  []string{`errors.Wrap(err, "loading")`},
			},
			{Content: "Never ignore errors"},
		},
	})

	body, warnings := Render(pkg, Capabilities{Dialect: "cursor", Body: MarkdownBody()})
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}

	want := "## Error Handling\n\n" +
		"- Wrap errors with context\n" +
		"  - Rationale: bare errors lose intent\n" +
		"  - Example: `errors.Wrap(err, \"loading\")`\n" +
		"- Never ignore errors"
	if body != want {
		t.Errorf("body =\n%s\nwant\n%s", body, want)
	}
}

func TestRender_OrderedRules(t *testing.T) {
	pkg := pkgWith(&canonical.RulesSection{
		Ordered: true,
		Rules:   []canonical.Rule{{Content: "first"}, {Content: "second"}},
	})

	body, _ := Render(pkg, Capabilities{Dialect: "trae", Body: MarkdownBody()})
	if !strings.Contains(body, "1. first") || !strings.Contains(body, "2. second") {
		t.Errorf("ordered rules not numbered:\n%s", body)
	}
}

func TestRender_ExamplesFraming(t *testing.T) {
	pkg := pkgWith(&canonical.ExamplesSection{
		Title: "Examples",
		Examples: []canonical.Example{
			{Description: "mutable globals", Code: "var x = 1", Language: "go", Good: canonical.Bool(false)},
			{Description: "explicit deps", Code: "type S struct{}", Language: "go", Good: canonical.Bool(true)},
			{Code: "echo hi", Language: "sh"},
		},
	})

	body, _ := Render(pkg, Capabilities{Dialect: "cursor", Body: MarkdownBody()})

	for _, want := range []string{
		"### Avoid: mutable globals",
		"### Preferred: explicit deps",
		"### Example",
		"```go\nvar x = 1\n```",
		"```sh\necho hi\n```",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRender_UnsupportedSectionWarns(t *testing.T) {
	pkg := pkgWith(
		&canonical.InstructionsSection{Text: "Do the thing."},
		&canonical.PersonaSection{Role: "a meticulous reviewer"},
	)

	body, warnings := Render(pkg, Capabilities{Dialect: "cursor", Body: MarkdownBody()})

	if strings.Contains(body, "reviewer") {
		t.Errorf("persona should not render:\n%s", body)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want one", warnings)
	}
	if warnings[0] != "persona section skipped (not supported by cursor)" {
		t.Errorf("warning = %q", warnings[0])
	}
}

func TestRender_ConsumedSectionSkipsSilently(t *testing.T) {
	pkg := pkgWith(
		&canonical.MetadataSection{Title: "T", Description: "D"},
		&canonical.InstructionsSection{Text: "Body."},
	)

	caps := Capabilities{
		Dialect:  "claude",
		Body:     MarkdownBody(),
		Consumed: map[canonical.SectionKind]bool{canonical.KindMetadata: true},
	}
	caps.Body[canonical.KindMetadata] = false

	body, warnings := Render(pkg, caps)
	if len(warnings) != 0 {
		t.Errorf("consumed section should not warn: %v", warnings)
	}
	if strings.Contains(body, "# T") {
		t.Errorf("consumed metadata should not render:\n%s", body)
	}
}

func TestRender_PersonaAndTools(t *testing.T) {
	pkg := pkgWith(
		&canonical.PersonaSection{
			Name:      "Ada",
			Role:      "a systems reviewer",
			Style:     []string{"terse", "direct"},
			Expertise: []string{"distributed systems"},
		},
		&canonical.ToolsSection{Tools: []string{"Read", "Grep"}},
	)

	body := MarkdownBody()
	body[canonical.KindPersona] = true
	body[canonical.KindTools] = true
	got, warnings := Render(pkg, Capabilities{Dialect: "claude", Body: body})

	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	for _, want := range []string{
		"You are Ada, a systems reviewer.",
		"Style: terse, direct.",
		"Expertise: distributed systems.",
		"## Tools\n\nRead, Grep",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("body missing %q:\n%s", want, got)
		}
	}
}

func TestRender_SectionOrderPreserved(t *testing.T) {
	pkg := pkgWith(
		&canonical.ContextSection{Title: "Context", Text: "Background."},
		&canonical.RulesSection{Rules: []canonical.Rule{{Content: "a rule"}}},
		&canonical.InstructionsSection{Text: "Finally."},
	)

	body, _ := Render(pkg, Capabilities{Dialect: "trae", Body: MarkdownBody()})

	ctx := strings.Index(body, "Background.")
	rule := strings.Index(body, "a rule")
	inst := strings.Index(body, "Finally.")
	if !(ctx < rule && rule < inst) {
		t.Errorf("section order not preserved:\n%s", body)
	}
}

func TestSideDataWarnings(t *testing.T) {
	pkg := pkgWith(&canonical.InstructionsSection{Text: "x"})
	pkg.SideData = map[string]string{
		"inclusion": "always",
		"globs":     "*.ts",
	}

	warnings := SideDataWarnings(pkg, "claude", map[string]bool{"globs": true})
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want one", warnings)
	}
	if warnings[0] != `metadata field "inclusion" dropped (not supported by claude)` {
		t.Errorf("warning = %q", warnings[0])
	}
}

func TestSideDataWarnings_Empty(t *testing.T) {
	pkg := pkgWith(&canonical.InstructionsSection{Text: "x"})
	if got := SideDataWarnings(pkg, "claude", nil); got != nil {
		t.Errorf("SideDataWarnings() = %v, want nil", got)
	}
}

type panicExporter struct{}

func (panicExporter) Format() canonical.Format { return "boom" }
func (panicExporter) Export(*canonical.Package, Options) Result {
	panic("render exploded")
}
func (panicExporter) Filename(*canonical.Package) string { return "boom.md" }

func TestRecovered_ConvertsPanic(t *testing.T) {
	res := Recovered(panicExporter{}, pkgWith(), Options{})

	if res.QualityScore != 0 {
		t.Errorf("QualityScore = %d, want 0", res.QualityScore)
	}
	if !res.LossyConversion {
		t.Error("panic result should be lossy")
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "render exploded") {
		t.Errorf("Warnings = %v", res.Warnings)
	}
}
