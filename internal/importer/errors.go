package importer

import "fmt"

// StructuralError reports a dialect-mandated structural requirement that
// the input does not meet: a required frontmatter field is missing, a field
// has an unrecognized value, or the frontmatter block itself is malformed.
// Importers fail fast with this error; the document must not be converted.
type StructuralError struct {
	Dialect string // dialect that imposed the requirement
	Field   string // frontmatter field involved, if any
	Reason  string // what was wrong
}

func (e *StructuralError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Dialect, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s", e.Dialect, e.Field, e.Reason)
}

// NewStructuralError builds a StructuralError for the given dialect.
func NewStructuralError(dialect, field, reason string) *StructuralError {
	return &StructuralError{Dialect: dialect, Field: field, Reason: reason}
}
