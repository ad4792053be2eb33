package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rulebridge/rulebridge/internal/convert"
	"github.com/rulebridge/rulebridge/internal/errors"
	"github.com/rulebridge/rulebridge/internal/exporter"
	"github.com/rulebridge/rulebridge/internal/paths"
	"github.com/rulebridge/rulebridge/pkg/fileutil"
)

var (
	convertFrom    string
	convertTo      string
	convertVariant string
	convertOut     string
	convertStdout  bool
	convertJSON    bool
)

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source dialect (required)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target dialect (required)")
	convertCmd.Flags().StringVar(&convertVariant, "variant", "",
		"target sub-flavor (e.g. path-specific for copilot)")
	convertCmd.Flags().StringVarP(&convertOut, "output", "o", ".",
		"directory to write the converted file under")
	convertCmd.Flags().BoolVar(&convertStdout, "stdout", false,
		"print converted content instead of writing a file")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false,
		"output the conversion report as JSON")
	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert one configuration file between dialects",
	Long: `Convert a single configuration file from one dialect to another.

The file is parsed into the canonical representation, then rendered in
the target dialect at its conventional path under the output directory.
Anything the target cannot represent is reported as warnings and lowers
the quality score; nothing is dropped silently.

Exit codes:
  0 - Converted (possibly with warnings)
  1 - Source file is structurally invalid or flags are wrong
  2 - I/O failure`,
	Example: `  # Cursor rules to a Claude memory file
  rulebridge convert .cursorrules --from cursor --to claude

  # Kiro steering to Copilot path-specific instructions
  rulebridge convert .kiro/steering/api.md --from kiro --to copilot --variant path-specific

  # Print instead of writing
  rulebridge convert AGENTS.md --from agentsmd --to windsurf --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

// convertReport is the JSON output structure.
type convertReport struct {
	Input           string   `json:"input"`
	Output          string   `json:"output,omitempty"`
	From            string   `json:"from"`
	To              string   `json:"to"`
	QualityScore    int      `json:"qualityScore"`
	LossyConversion bool     `json:"lossyConversion"`
	Warnings        []string `json:"warnings,omitempty"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, err := parseDialect(convertFrom)
	if err != nil {
		return err
	}
	to, err := parseDialect(convertTo)
	if err != nil {
		return err
	}

	input := args[0]
	raw, err := fileutil.ReadFileWithLimit(input)
	if err != nil {
		return errors.NewSystemError(err, "check the input path")
	}

	engine := convert.NewEngine()
	pkg, err := engine.Import(raw, from, sourceForFile(input))
	if err != nil {
		return errors.NewUserError(err, "the source file is not a valid "+string(from)+" document")
	}

	res, err := engine.Export(pkg, to, exporter.Options{Variant: convertVariant})
	if err != nil {
		return errors.NewExitError(err, errors.ExitUser)
	}

	slog.Debug("converted package",
		"name", pkg.Name, "from", from, "to", to, "quality", res.QualityScore)

	out := cmd.OutOrStdout()

	if convertStdout {
		fmt.Fprint(out, res.Content)
		reportWarnings(cmd, res)
		return nil
	}

	filename, err := engine.Filename(pkg, to)
	if err != nil {
		return errors.NewExitError(err, errors.ExitUser)
	}
	dest := outputPath(to, filename, convertOut)

	if err := paths.EnsureDir(filepath.Dir(dest)); err != nil {
		return errors.NewSystemError(err, "check output directory permissions")
	}
	if err := fileutil.AtomicWriteFile(dest, []byte(res.Content), 0644); err != nil {
		return errors.NewSystemError(err, "check output directory permissions")
	}

	if convertJSON {
		report := convertReport{
			Input:           input,
			Output:          dest,
			From:            string(from),
			To:              string(to),
			QualityScore:    res.QualityScore,
			LossyConversion: res.LossyConversion,
			Warnings:        res.Warnings,
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if !quiet {
		fmt.Fprintf(out, "%s -> %s (quality %s)\n",
			input, dest, qualityColor(res.QualityScore).Sprintf("%d", res.QualityScore))
	}
	reportWarnings(cmd, res)
	return nil
}

// reportWarnings prints export warnings to stderr unless quiet.
func reportWarnings(cmd *cobra.Command, res exporter.Result) {
	if quiet {
		return
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "  warning: %s\n", w)
	}
}
