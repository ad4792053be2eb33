package cursor

import (
	"strings"
	"testing"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

func newPkg(t *testing.T) *canonical.Package {
	t.Helper()
	pkg := canonical.New(
		canonical.Source{ID: "react.mdc", Name: "React Components"},
		canonical.NewContent([]canonical.Section{
			&canonical.MetadataSection{Title: "React Components", Description: "Component conventions."},
			&canonical.RulesSection{Rules: []canonical.Rule{{Content: "One component per file"}}},
		}),
	)
	if err := taxonomy.Assign(pkg, taxonomy.FormatCursor, taxonomy.SubtypeRule); err != nil {
		t.Fatal(err)
	}
	return pkg
}

func TestExport_LegacyBodyOnly(t *testing.T) {
	pkg := newPkg(t)

	res := New().Export(pkg, exporter.Options{})

	if strings.HasPrefix(res.Content, "---") {
		t.Errorf("legacy rules should have no frontmatter:\n%s", res.Content)
	}
	if !strings.Contains(res.Content, "- One component per file") {
		t.Errorf("body missing rule:\n%s", res.Content)
	}
	if res.QualityScore != 100 {
		t.Errorf("QualityScore = %d, warnings %v", res.QualityScore, res.Warnings)
	}
}

func TestExport_ModernRestoresFrontmatter(t *testing.T) {
	pkg := newPkg(t)
	pkg.SideData = map[string]string{
		"globs":       "src/**/*.tsx, src/**/*.jsx",
		"alwaysApply": "false",
	}

	res := New().Export(pkg, exporter.Options{})

	if !strings.HasPrefix(res.Content, "---\n") {
		t.Fatalf("mdc side data should force frontmatter:\n%s", res.Content)
	}
	for _, want := range []string{"description: Component conventions.", "- src/**/*.tsx", "- src/**/*.jsx"} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("content missing %q:\n%s", want, res.Content)
		}
	}
	// alwaysApply false is the zero value and stays out of the frontmatter.
	if strings.Contains(res.Content, "alwaysApply") {
		t.Errorf("alwaysApply: false should be omitted:\n%s", res.Content)
	}
	if res.LossyConversion {
		t.Errorf("mdc fields round-trip, warnings %v", res.Warnings)
	}
}

func TestExport_AlwaysApply(t *testing.T) {
	pkg := newPkg(t)
	pkg.SideData = map[string]string{"alwaysApply": "true"}

	res := New().Export(pkg, exporter.Options{})

	if !strings.Contains(res.Content, "alwaysApply: true") {
		t.Errorf("content missing alwaysApply:\n%s", res.Content)
	}
}

func TestExport_ForeignSideDataWarns(t *testing.T) {
	pkg := newPkg(t)
	pkg.SideData = map[string]string{"model": "sonnet"}

	res := New().Export(pkg, exporter.Options{})

	if !res.LossyConversion || res.QualityScore != 90 {
		t.Errorf("score = %d lossy = %v, warnings %v", res.QualityScore, res.LossyConversion, res.Warnings)
	}
}

func TestFilename(t *testing.T) {
	pkg := newPkg(t)
	if got := New().Filename(pkg); got != ".cursorrules" {
		t.Errorf("Filename() = %q", got)
	}

	pkg.SideData = map[string]string{"globs": "src/**"}
	if got := New().Filename(pkg); got != ".cursor/rules/react-components.mdc" {
		t.Errorf("Filename() = %q", got)
	}
}
