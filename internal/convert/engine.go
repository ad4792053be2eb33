// Package convert wires importers and exporters into a conversion engine.
//
// The engine is read-only after construction: its registries and the
// heuristic tables beneath them are fixed, so any number of conversions may
// run concurrently with no coordination.
package convert

import (
	"github.com/cockroachdb/errors"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/exporter"
	expaider "github.com/rulebridge/rulebridge/internal/exporter/aider"
	expagentsmd "github.com/rulebridge/rulebridge/internal/exporter/agentsmd"
	expclaude "github.com/rulebridge/rulebridge/internal/exporter/claude"
	expcopilot "github.com/rulebridge/rulebridge/internal/exporter/copilot"
	expcursor "github.com/rulebridge/rulebridge/internal/exporter/cursor"
	expdroid "github.com/rulebridge/rulebridge/internal/exporter/droid"
	expgemini "github.com/rulebridge/rulebridge/internal/exporter/gemini"
	expkiro "github.com/rulebridge/rulebridge/internal/exporter/kiro"
	exptrae "github.com/rulebridge/rulebridge/internal/exporter/trae"
	expwindsurf "github.com/rulebridge/rulebridge/internal/exporter/windsurf"
	"github.com/rulebridge/rulebridge/internal/importer"
	impaider "github.com/rulebridge/rulebridge/internal/importer/aider"
	impagentsmd "github.com/rulebridge/rulebridge/internal/importer/agentsmd"
	impclaude "github.com/rulebridge/rulebridge/internal/importer/claude"
	impcopilot "github.com/rulebridge/rulebridge/internal/importer/copilot"
	impcursor "github.com/rulebridge/rulebridge/internal/importer/cursor"
	impdroid "github.com/rulebridge/rulebridge/internal/importer/droid"
	impgemini "github.com/rulebridge/rulebridge/internal/importer/gemini"
	impkiro "github.com/rulebridge/rulebridge/internal/importer/kiro"
	imptrae "github.com/rulebridge/rulebridge/internal/importer/trae"
	impwindsurf "github.com/rulebridge/rulebridge/internal/importer/windsurf"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

// Sentinel errors for registry lookups.
var (
	ErrNoImporter = errors.New("no importer for dialect")
	ErrNoExporter = errors.New("no exporter for dialect")
)

// Engine holds the importer and exporter registries.
type Engine struct {
	importers map[canonical.Format]importer.Importer
	exporters map[canonical.Format]exporter.Exporter
}

// NewEngine constructs an engine with every supported dialect registered.
func NewEngine() *Engine {
	e := &Engine{
		importers: make(map[canonical.Format]importer.Importer),
		exporters: make(map[canonical.Format]exporter.Exporter),
	}

	for _, imp := range []importer.Importer{
		impcursor.New(), impclaude.New(), impcopilot.New(), impkiro.New(),
		impwindsurf.New(), imptrae.New(), impdroid.New(), impaider.New(),
		impagentsmd.New(), impgemini.New(),
	} {
		e.importers[imp.Format()] = imp
	}
	for _, exp := range []exporter.Exporter{
		expcursor.New(), expclaude.New(), expcopilot.New(), expkiro.New(),
		expwindsurf.New(), exptrae.New(), expdroid.New(), expaider.New(),
		expagentsmd.New(), expgemini.New(),
	} {
		e.exporters[exp.Format()] = exp
	}
	return e
}

// Formats returns the supported dialect tags in a stable order.
func (e *Engine) Formats() []canonical.Format {
	return taxonomy.Formats()
}

// Import converts raw dialect text into a canonical package. Structural
// failures propagate as hard errors; the caller must not persist anything.
func (e *Engine) Import(raw []byte, from canonical.Format, src canonical.Source) (*canonical.Package, error) {
	imp, ok := e.importers[from]
	if !ok {
		return nil, errors.Wrapf(ErrNoImporter, "%q", from)
	}
	return imp.Import(raw, src)
}

// Export renders a canonical package as dialect text. The only error is an
// unknown dialect: rendering problems, including panics, degrade into the
// result's warnings so batch jobs continue.
func (e *Engine) Export(pkg *canonical.Package, to canonical.Format, opts exporter.Options) (exporter.Result, error) {
	exp, ok := e.exporters[to]
	if !ok {
		return exporter.Result{}, errors.Wrapf(ErrNoExporter, "%q", to)
	}
	return exporter.Recovered(exp, pkg, opts), nil
}

// Convert runs import then export in one step.
func (e *Engine) Convert(raw []byte, from, to canonical.Format, src canonical.Source, opts exporter.Options) (exporter.Result, error) {
	pkg, err := e.Import(raw, from, src)
	if err != nil {
		return exporter.Result{}, err
	}
	return e.Export(pkg, to, opts)
}

// Filename suggests the target dialect's conventional path for a package.
func (e *Engine) Filename(pkg *canonical.Package, to canonical.Format) (string, error) {
	exp, ok := e.exporters[to]
	if !ok {
		return "", errors.Wrapf(ErrNoExporter, "%q", to)
	}
	return exp.Filename(pkg), nil
}
