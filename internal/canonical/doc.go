// Package canonical defines the dialect-independent representation of an
// AI assistant configuration file.
//
// A [Package] is the unit of exchange between importers and exporters. Its
// content is an ordered sequence of [Section] values, a sealed sum type with
// one variant per semantic block (instructions, rules, examples, context,
// persona, tools, metadata, custom). Section order maps to document order
// and is preserved in both conversion directions.
//
// A package's (format, subtype) classification is set exactly once through
// [Package.AssignTaxonomy]; importers never write the fields directly.
// After that step the package is read-only: exporters only consume it.
package canonical
