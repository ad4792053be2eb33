package taxonomy

import (
	"testing"
)

func entry(name string) ManifestEntry {
	return ManifestEntry{
		Name:    name,
		Version: "1.0.0",
		Author:  "platform team",
		Format:  FormatCursor,
		Subtype: SubtypeRule,
	}
}

func TestValidateManifest_Clean(t *testing.T) {
	result := ValidateManifest([]ManifestEntry{entry("api-rules"), entry("testing-rules")})

	if result.HasErrors() {
		t.Errorf("unexpected errors: %v", result.Errors())
	}
	if result.HasWarnings() {
		t.Errorf("unexpected warnings: %v", result.Warnings())
	}
}

func TestValidateManifest_AccumulatesEverything(t *testing.T) {
	entries := []ManifestEntry{
		{Version: "1.0.0", Format: FormatCursor, Subtype: SubtypeRule},   // no name
		{Name: "a", Format: FormatCursor, Subtype: SubtypeRule},          // no version
		{Name: "b", Version: "banana", Format: FormatKiro, Subtype: SubtypeSteering},
		{Name: "c", Version: "1.0.0"}, // no taxonomy
	}
	entries[0].Author = "x"
	entries[1].Author = "x"
	entries[2].Author = "x"
	entries[3].Author = "x"

	result := ValidateManifest(entries)

	if got := len(result.Errors()); got != 4 {
		t.Errorf("got %d errors, want 4: %v", got, result.Errors())
	}
	fields := map[string]bool{}
	for _, iss := range result.Errors() {
		fields[iss.Field] = true
	}
	for _, want := range []string{"name", "version", "format"} {
		if !fields[want] {
			t.Errorf("no error for field %q: %v", want, result.Errors())
		}
	}
}

func TestValidateManifest_Semver(t *testing.T) {
	ok := []string{"0.1.0", "2.10.3", "1.0.0-rc.1"}
	bad := []string{"1.0", "v1.0.0", "1.0.0.0", "latest"}

	for _, v := range ok {
		e := entry("pkg")
		e.Version = v
		if result := ValidateManifest([]ManifestEntry{e}); result.HasErrors() {
			t.Errorf("version %q rejected: %v", v, result.Errors())
		}
	}
	for _, v := range bad {
		e := entry("pkg")
		e.Version = v
		if result := ValidateManifest([]ManifestEntry{e}); !result.HasErrors() {
			t.Errorf("version %q accepted", v)
		}
	}
}

func TestValidateManifest_IncompatiblePair(t *testing.T) {
	e := entry("pkg")
	e.Format = FormatGemini
	e.Subtype = SubtypeAgent

	result := ValidateManifest([]ManifestEntry{e})
	if !result.HasErrors() {
		t.Fatal("gemini/agent should be rejected")
	}
	if result.Errors()[0].Field != "subtype" {
		t.Errorf("Field = %q", result.Errors()[0].Field)
	}
}

func TestValidateManifest_PartialTaxonomy(t *testing.T) {
	e := entry("pkg")
	e.Subtype = ""

	result := ValidateManifest([]ManifestEntry{e})
	if !result.HasErrors() {
		t.Fatal("format without subtype should be rejected")
	}
}

func TestValidateManifest_DuplicateNames(t *testing.T) {
	result := ValidateManifest([]ManifestEntry{entry("pkg"), entry("pkg"), entry("other")})

	dups := 0
	for _, iss := range result.Errors() {
		if iss.Message == "duplicate package name in manifest" {
			dups++
			if iss.Package != "pkg" {
				t.Errorf("duplicate reported for %q", iss.Package)
			}
		}
	}
	if dups != 1 {
		t.Errorf("got %d duplicate errors, want 1", dups)
	}
}

func TestValidateManifest_MissingAuthorWarns(t *testing.T) {
	e := entry("pkg")
	e.Author = ""

	result := ValidateManifest([]ManifestEntry{e})
	if result.HasErrors() {
		t.Errorf("missing author must not be an error: %v", result.Errors())
	}
	if !result.HasWarnings() {
		t.Error("missing author should warn")
	}
}
