package cursor

import (
	"testing"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

func TestImport_ModernMdc(t *testing.T) {
	raw := []byte(`---
description: TypeScript conventions
globs:
  - "src/**/*.ts"
  - "src/**/*.tsx"
alwaysApply: false
---

# TS Rules

- Prefer interfaces over type aliases
`)

	pkg, err := New().Import(raw, canonical.Source{Name: "ts-rules"})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if pkg.Format() != taxonomy.FormatCursor || pkg.Subtype() != taxonomy.SubtypeRule {
		t.Errorf("taxonomy = %s/%s", pkg.Format(), pkg.Subtype())
	}
	if pkg.SideData["globs"] != "src/**/*.ts, src/**/*.tsx" {
		t.Errorf("globs = %q", pkg.SideData["globs"])
	}
	if pkg.SideData["alwaysApply"] != "false" {
		t.Errorf("alwaysApply = %q", pkg.SideData["alwaysApply"])
	}

	md := pkg.Metadata()
	if md == nil {
		t.Fatal("expected metadata section")
	}
	if md.Description != "TypeScript conventions" {
		t.Errorf("description = %q", md.Description)
	}
}

func TestImport_LegacyCursorrules(t *testing.T) {
	raw := []byte("Be terse. Use tabs.\n")

	pkg, err := New().Import(raw, canonical.Source{Name: "cursorrules"})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(pkg.SideData) != 0 {
		t.Errorf("legacy file should carry no side data: %v", pkg.SideData)
	}
	if len(pkg.Content.Sections) == 0 {
		t.Fatal("content should never be empty")
	}
}
