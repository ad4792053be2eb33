// Package taxonomy owns the (format, subtype) classification of canonical
// packages. Assign is the single writer of the pair: importers call it
// exactly once after building sections, so no package can exist with the
// fields set independently or omitted.
package taxonomy

import (
	"github.com/cockroachdb/errors"

	"github.com/rulebridge/rulebridge/internal/canonical"
)

// Supported dialect tags.
const (
	FormatCursor    canonical.Format = "cursor"
	FormatClaude    canonical.Format = "claude"
	FormatCopilot   canonical.Format = "copilot"
	FormatKiro      canonical.Format = "kiro"
	FormatWindsurf  canonical.Format = "windsurf"
	FormatTrae      canonical.Format = "trae"
	FormatDroid     canonical.Format = "droid"
	FormatAider     canonical.Format = "aider"
	FormatAgentsMD  canonical.Format = "agentsmd"
	FormatGemini    canonical.Format = "gemini"
	FormatCanonical canonical.Format = "canonical"
)

// Functional roles a package can play.
const (
	SubtypeRule         canonical.Subtype = "rule"
	SubtypeAgent        canonical.Subtype = "agent"
	SubtypeSkill        canonical.Subtype = "skill"
	SubtypeSlashCommand canonical.Subtype = "slash-command"
	SubtypeHook         canonical.Subtype = "hook"
	SubtypeSteering     canonical.Subtype = "steering"
)

// formatSubtypes maps each format to the subtypes it can classify.
// A nil entry means every subtype is allowed.
var formatSubtypes = map[canonical.Format][]canonical.Subtype{
	FormatCursor:    {SubtypeRule},
	FormatClaude:    {SubtypeRule, SubtypeAgent, SubtypeSkill, SubtypeSlashCommand, SubtypeHook},
	FormatCopilot:   {SubtypeRule},
	FormatKiro:      {SubtypeSteering},
	FormatWindsurf:  {SubtypeRule},
	FormatTrae:      {SubtypeRule},
	FormatDroid:     {SubtypeAgent, SubtypeSlashCommand},
	FormatAider:     {SubtypeRule},
	FormatAgentsMD:  {SubtypeRule},
	FormatGemini:    {SubtypeSlashCommand},
	FormatCanonical: nil,
}

// Sentinel errors for classification failures.
var (
	ErrUnknownFormat      = errors.New("unknown format")
	ErrUnknownSubtype     = errors.New("unknown subtype")
	ErrIncompatiblePair   = errors.New("subtype not valid for format")
	ErrPackageUnspecified = errors.New("package is nil")
)

var knownSubtypes = map[canonical.Subtype]struct{}{
	SubtypeRule:         {},
	SubtypeAgent:        {},
	SubtypeSkill:        {},
	SubtypeSlashCommand: {},
	SubtypeHook:         {},
	SubtypeSteering:     {},
}

// Formats returns all supported dialect tags in a stable order.
func Formats() []canonical.Format {
	return []canonical.Format{
		FormatCursor, FormatClaude, FormatCopilot, FormatKiro, FormatWindsurf,
		FormatTrae, FormatDroid, FormatAider, FormatAgentsMD, FormatGemini,
	}
}

// Subtypes returns the subtypes a format can classify, in declaration
// order. Nil means the format is unknown; FormatCanonical allows all.
func Subtypes(format canonical.Format) []canonical.Subtype {
	allowed, ok := formatSubtypes[format]
	if !ok {
		return nil
	}
	if allowed == nil {
		return []canonical.Subtype{
			SubtypeRule, SubtypeAgent, SubtypeSkill,
			SubtypeSlashCommand, SubtypeHook, SubtypeSteering,
		}
	}
	return allowed
}

// ValidFormat reports whether format is a recognized dialect tag.
func ValidFormat(format canonical.Format) bool {
	_, ok := formatSubtypes[format]
	return ok
}

// ValidPair reports whether subtype is a legal classification under format.
func ValidPair(format canonical.Format, subtype canonical.Subtype) bool {
	allowed, ok := formatSubtypes[format]
	if !ok {
		return false
	}
	if _, ok := knownSubtypes[subtype]; !ok {
		return false
	}
	if allowed == nil {
		return true
	}
	for _, s := range allowed {
		if s == subtype {
			return true
		}
	}
	return false
}

// Assign classifies pkg with the (format, subtype) pair. It validates both
// values and their compatibility, then performs the package's single
// taxonomy mutation. Calling it again with identical arguments is a no-op;
// different arguments are an error.
func Assign(pkg *canonical.Package, format canonical.Format, subtype canonical.Subtype) error {
	if pkg == nil {
		return ErrPackageUnspecified
	}
	if _, ok := formatSubtypes[format]; !ok {
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	if _, ok := knownSubtypes[subtype]; !ok {
		return errors.Wrapf(ErrUnknownSubtype, "%q", subtype)
	}
	if !ValidPair(format, subtype) {
		return errors.Wrapf(ErrIncompatiblePair, "%s/%s", format, subtype)
	}
	return pkg.AssignTaxonomy(format, subtype)
}
