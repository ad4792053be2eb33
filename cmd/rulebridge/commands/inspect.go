package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/rulebridge/rulebridge/internal/convert"
	"github.com/rulebridge/rulebridge/internal/errors"
	"github.com/rulebridge/rulebridge/pkg/fileutil"
)

var (
	inspectFrom string
	inspectOut  string
)

func init() {
	inspectCmd.Flags().StringVar(&inspectFrom, "from", "", "source dialect (required)")
	inspectCmd.Flags().StringVarP(&inspectOut, "output", "o", "",
		"write the canonical JSON to a file instead of stdout")
	_ = inspectCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the canonical form of a configuration file",
	Long: `Parse a configuration file and print its canonical representation
as JSON: identity, taxonomy, side-channel data, and the ordered section
list. Useful for debugging why a conversion produced a given result.`,
	Example: `  # Inspect a Claude agent definition
  rulebridge inspect .claude/agents/reviewer.md --from claude

  # Save the canonical form
  rulebridge inspect .cursorrules --from cursor -o reviewer.json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	from, err := parseDialect(inspectFrom)
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

	snap := pkg.Snapshot()

	if inspectOut != "" {
		if err := fileutil.AtomicWriteJSON(inspectOut, snap); err != nil {
			return errors.NewSystemError(err, "check the output path")
		}
		return nil
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
