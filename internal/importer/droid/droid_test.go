package droid

import (
	"testing"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

func TestImport_ArgumentHintMeansSlashCommand(t *testing.T) {
	raw := []byte(`---
name: deploy
description: Deploy the current branch
argument-hint: "[environment]"
allowed-tools: Bash, Read
---

Run the deployment pipeline for the given environment.
`)

	pkg, err := New().Import(raw, canonical.Source{ID: "deploy", Name: "deploy"})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if pkg.Subtype() != taxonomy.SubtypeSlashCommand {
		t.Errorf("Subtype() = %s, want slash-command", pkg.Subtype())
	}
	if pkg.SideData["argument-hint"] != "[environment]" {
		t.Errorf("argument-hint = %q", pkg.SideData["argument-hint"])
	}
	if pkg.SideData["allowed-tools"] != "Bash, Read" {
		t.Errorf("allowed-tools = %q", pkg.SideData["allowed-tools"])
	}

	md := pkg.Metadata()
	if md == nil {
		t.Fatal("expected a metadata section")
	}
	if md.Title != "deploy" {
		t.Errorf("metadata title = %q", md.Title)
	}
	if md.Description != "Deploy the current branch" {
		t.Errorf("metadata description = %q", md.Description)
	}
}

func TestImport_NoHintMeansAgent(t *testing.T) {
	raw := []byte("---\nname: reviewer\ndescription: Reviews pull requests\n---\n\nReview with care.\n")

	pkg, err := New().Import(raw, canonical.Source{Name: "reviewer"})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if pkg.Subtype() != taxonomy.SubtypeAgent {
		t.Errorf("Subtype() = %s, want agent", pkg.Subtype())
	}
	if len(pkg.SideData) != 0 {
		t.Errorf("SideData = %v, want empty", pkg.SideData)
	}
}

func TestImport_PlainBody(t *testing.T) {
	pkg, err := New().Import([]byte("Just instructions, no frontmatter.\n"), canonical.Source{Name: "notes"})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if pkg.Subtype() != taxonomy.SubtypeAgent {
		t.Errorf("Subtype() = %s, want agent", pkg.Subtype())
	}
	if len(pkg.Content.Sections) == 0 {
		t.Fatal("content should never be empty")
	}
}
