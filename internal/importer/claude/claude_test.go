package claude

import (
	"testing"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

func TestImport_MemoryFileIsRule(t *testing.T) {
	raw := []byte("# Project Memory\n\nUse the Makefile for all builds.\n")

	pkg, err := New().Import(raw, canonical.Source{Name: "CLAUDE"})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if pkg.Format() != taxonomy.FormatClaude {
		t.Errorf("Format() = %s", pkg.Format())
	}
	if pkg.Subtype() != taxonomy.SubtypeRule {
		t.Errorf("Subtype() = %s, want rule", pkg.Subtype())
	}
}

func TestImport_AgentDefinition(t *testing.T) {
	raw := []byte(`---
name: code-reviewer
description: Reviews code for style violations
tools: Read, Grep, Glob
model: sonnet
---

Review every diff hunk before approving.
`)

	pkg, err := New().Import(raw, canonical.Source{Name: "code-reviewer"})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if pkg.Subtype() != taxonomy.SubtypeAgent {
		t.Errorf("Subtype() = %s, want agent", pkg.Subtype())
	}
	if pkg.SideData["model"] != "sonnet" {
		t.Errorf("model side data = %q", pkg.SideData["model"])
	}

	var tools *canonical.ToolsSection
	for _, s := range pkg.Content.Sections {
		if ts, ok := s.(*canonical.ToolsSection); ok {
			tools = ts
		}
	}
	if tools == nil {
		t.Fatal("expected a tools section")
	}
	want := []string{"Read", "Grep", "Glob"}
	if len(tools.Tools) != len(want) {
		t.Fatalf("Tools = %v, want %v", tools.Tools, want)
	}
	for i, tool := range want {
		if tools.Tools[i] != tool {
			t.Errorf("Tools[%d] = %q, want %q", i, tools.Tools[i], tool)
		}
	}
}

func TestSplitTools(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"Read", 1},
		{"Read, Grep,Glob", 3},
		{" , Read , ", 1},
	}
	for _, tt := range tests {
		if got := splitTools(tt.input); len(got) != tt.want {
			t.Errorf("splitTools(%q) = %v, want %d items", tt.input, got, tt.want)
		}
	}
}
