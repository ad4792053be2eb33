package commands

import (
	"gopkg.in/yaml.v3"

	"github.com/spf13/cobra"

	"github.com/rulebridge/rulebridge/internal/errors"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
	"github.com/rulebridge/rulebridge/internal/validator"
	"github.com/rulebridge/rulebridge/pkg/fileutil"
)

var validateOutJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateOutJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <manifest>",
	Short: "Validate a package manifest",
	Long: `Validate a YAML manifest describing a batch of packages.

Each entry must carry a name, a semantic version, and a consistent
(format, subtype) taxonomy pair. Duplicate names across the manifest
are rejected. A missing author is reported as a warning.

Exit codes:
  0 - Manifest is valid (warnings allowed)
  1 - Manifest has errors`,
	Example: `  # Validate before publishing
  rulebridge validate manifest.yaml

  # Machine-readable output
  rulebridge validate manifest.yaml --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	raw, err := fileutil.ReadFileWithLimit(args[0])
	if err != nil {
		return errors.NewSystemError(err, "check the manifest path")
	}

	var entries []taxonomy.ManifestEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return errors.NewUserError(err, "the manifest must be a YAML list of package entries")
	}

	result := taxonomy.ValidateManifest(entries)

	format := validator.FormatText
	if validateOutJSON {
		format = validator.FormatJSON
	}
	reporter := validator.NewReporter(cmd.OutOrStdout(), format)
	if err := reporter.Report(result); err != nil {
		return err
	}

	if result.HasErrors() {
		return errors.NewExitError(errors.New("manifest validation failed"), errors.ExitUser)
	}
	return nil
}
