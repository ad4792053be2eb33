package commands

import (
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/errors"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

// parseDialect validates a --from/--to flag value.
func parseDialect(name string) (canonical.Format, error) {
	format := canonical.Format(name)
	if name == "" || !taxonomy.ValidFormat(format) || format == taxonomy.FormatCanonical {
		valid := make([]string, 0, len(taxonomy.Formats()))
		for _, f := range taxonomy.Formats() {
			valid = append(valid, string(f))
		}
		err := errors.Newf("invalid dialect %q (valid: %s)", name, strings.Join(valid, ", "))
		return "", errors.NewUserError(err, "run 'rulebridge formats' to see supported dialects")
	}
	return format, nil
}

// sourceForFile derives source metadata from an input path. Importers
// prefer titles found in the document itself; this is the fallback.
func sourceForFile(path string) canonical.Source {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.TrimPrefix(name, ".")
	if name == "" {
		name = base
	}
	return canonical.Source{
		ID:   name,
		Name: name,
	}
}

// outputPath resolves where an exported file should land. A per-dialect
// output_dir override from the config replaces the conventional directory.
func outputPath(dialect canonical.Format, filename, outDir string) string {
	if cfg != nil {
		if override, ok := cfg.Dialects[string(dialect)]; ok && override.OutputDir != "" {
			return filepath.Join(override.OutputDir, filepath.Base(filename))
		}
	}
	return filepath.Join(outDir, filename)
}

// qualityColor picks a color attribute for a quality score.
func qualityColor(score int) *color.Color {
	switch {
	case score >= 90:
		return color.New(color.FgGreen)
	case score >= 70:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
