package exporter

import (
	"fmt"
	"sort"

	"github.com/rulebridge/rulebridge/internal/canonical"
)

// SideDataWarnings reports the package's side-channel fields that the
// target dialect does not understand. Per the data-model contract, foreign
// side data is never interpreted; the exporter only warns that it is
// absent from the output. known lists the keys the dialect consumes.
func SideDataWarnings(pkg *canonical.Package, dialect canonical.Format, known map[string]bool) []string {
	if len(pkg.SideData) == 0 {
		return nil
	}
	keys := make([]string, 0, len(pkg.SideData))
	for k := range pkg.SideData {
		if !known[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	warnings := make([]string, 0, len(keys))
	for _, k := range keys {
		warnings = append(warnings,
			fmt.Sprintf("metadata field %q dropped (not supported by %s)", k, dialect))
	}
	return warnings
}
