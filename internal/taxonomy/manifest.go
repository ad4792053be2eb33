package taxonomy

import (
	"regexp"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/validator"
)

// ManifestEntry is one package record in a multi-package manifest. The
// registry hands these to Validate before accepting a publish batch.
type ManifestEntry struct {
	Name    string            `json:"name" yaml:"name"`
	Version string            `json:"version" yaml:"version"`
	Author  string            `json:"author,omitempty" yaml:"author,omitempty"`
	Format  canonical.Format  `json:"format" yaml:"format"`
	Subtype canonical.Subtype `json:"subtype" yaml:"subtype"`
	Tags    []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// semverPattern accepts MAJOR.MINOR.PATCH with an optional pre-release tag.
var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`)

// ValidateManifest checks a manifest for required fields, valid taxonomy
// pairs, well-formed versions, and duplicate names. All findings accumulate
// into the result; nothing stops at the first problem.
func ValidateManifest(entries []ManifestEntry) *validator.Result {
	result := &validator.Result{}
	seen := make(map[string]int, len(entries))

	for _, e := range entries {
		label := e.Name
		if label == "" {
			label = "(unnamed)"
		}

		if e.Name == "" {
			result.AddError(label, "name", "name is required", nil)
		} else {
			seen[e.Name]++
		}

		if e.Version == "" {
			result.AddError(label, "version", "version is required", nil)
		} else if !semverPattern.MatchString(e.Version) {
			result.AddError(label, "version", "version must be a semantic version", e.Version)
		}

		switch {
		case e.Format == "" && e.Subtype == "":
			result.AddError(label, "format", "taxonomy is unassigned", nil)
		case e.Format == "" || e.Subtype == "":
			result.AddError(label, "format", "format and subtype must be set together", nil)
		case !ValidFormat(e.Format):
			result.AddError(label, "format", "unknown format", string(e.Format))
		case !ValidPair(e.Format, e.Subtype):
			result.AddError(label, "subtype", "subtype not valid for format", string(e.Subtype))
		}

		if e.Author == "" {
			result.AddWarning(label, "author", "author is missing", nil)
		}
	}

	for name, count := range seen {
		if count > 1 {
			result.AddError(name, "name", "duplicate package name in manifest", count)
		}
	}

	return result
}
