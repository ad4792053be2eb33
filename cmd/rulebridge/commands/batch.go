package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rulebridge/rulebridge/internal/canonical"
	"github.com/rulebridge/rulebridge/internal/convert"
	"github.com/rulebridge/rulebridge/internal/errors"
	"github.com/rulebridge/rulebridge/internal/paths"
	"github.com/rulebridge/rulebridge/pkg/fileutil"
)

var (
	batchFrom    string
	batchTargets []string
	batchOut     string
	batchJobs    int
	batchJSON    bool
	batchDryRun  bool
)

func init() {
	batchCmd.Flags().StringVar(&batchFrom, "from", "", "source dialect (required)")
	batchCmd.Flags().StringArrayVar(&batchTargets, "to", nil,
		"target dialect, repeatable (default: config default_targets)")
	batchCmd.Flags().StringVarP(&batchOut, "output", "o", ".",
		"directory to write converted files under")
	batchCmd.Flags().IntVar(&batchJobs, "jobs", 0,
		"maximum parallel conversions (0 = number of CPUs)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false,
		"output the batch report as JSON")
	batchCmd.Flags().BoolVar(&batchDryRun, "dry-run", false,
		"convert and report without writing files")
	_ = batchCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Convert many files to one or more dialects",
	Long: `Convert a set of configuration files to one or more target dialects.

Each (file, target) pair is one conversion job. Jobs run in parallel up
to the --jobs limit; a file that fails to parse fails only its own jobs
and the rest of the batch continues.

Targets default to the default_targets list from the configuration
file when no --to flags are given.

Exit codes:
  0 - All jobs converted (possibly with warnings)
  1 - At least one job failed`,
	Example: `  # One source dialect, two targets
  rulebridge batch rules/*.md --from kiro --to claude --to cursor

  # Use config default targets, limit parallelism
  rulebridge batch docs/*.md --from agentsmd --jobs 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

// batchReport is the JSON output structure.
type batchReport struct {
	Jobs      []convertReport `json:"jobs"`
	Failed    int             `json:"failed"`
	Succeeded int             `json:"succeeded"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	from, err := parseDialect(batchFrom)
	if err != nil {
		return err
	}

	targetNames := batchTargets
	if len(targetNames) == 0 && cfg != nil {
		targetNames = cfg.DefaultTargets
	}
	if len(targetNames) == 0 {
		return errors.NewUserError(errors.New("no target dialects"),
			"pass --to or set default_targets in the config file")
	}

	targets := make([]canonical.Format, 0, len(targetNames))
	for _, name := range targetNames {
		format, err := parseDialect(name)
		if err != nil {
			return err
		}
		targets = append(targets, format)
	}

	// One job per (file, target) pair. Raw bytes are read up front so the
	// parallel phase is pure computation.
	var jobs []convert.Job
	var inputs []string
	for _, input := range args {
		raw, err := fileutil.ReadFileWithLimit(input)
		if err != nil {
			return errors.NewSystemError(err, "check the input paths")
		}
		for _, target := range targets {
			jobs = append(jobs, convert.Job{
				Raw:    raw,
				From:   from,
				To:     target,
				Source: sourceForFile(input),
			})
			inputs = append(inputs, input)
		}
	}

	engine := convert.NewEngine()
	results, err := engine.Batch(cmd.Context(), jobs, batchJobs)
	if err != nil {
		return errors.NewExitError(err, errors.ExitSystem)
	}

	report := batchReport{}
	out := cmd.OutOrStdout()

	for i, jr := range results {
		input := inputs[i]
		entry := convertReport{
			Input: input,
			From:  string(jr.Job.From),
			To:    string(jr.Job.To),
		}

		if jr.Err != nil {
			report.Failed++
			entry.Warnings = []string{jr.Err.Error()}
			report.Jobs = append(report.Jobs, entry)
			if !batchJSON && !quiet {
				fmt.Fprintf(out, "%s -> %s: %s\n", input, jr.Job.To,
					qualityColor(0).Sprint("failed: "+jr.Err.Error()))
			}
			continue
		}

		entry.QualityScore = jr.Result.QualityScore
		entry.LossyConversion = jr.Result.LossyConversion
		entry.Warnings = jr.Result.Warnings

		if !batchDryRun {
			dest, werr := writeJobResult(engine, jr)
			if werr != nil {
				report.Failed++
				entry.Warnings = append(entry.Warnings, werr.Error())
				report.Jobs = append(report.Jobs, entry)
				continue
			}
			entry.Output = dest
		}
		report.Succeeded++
		report.Jobs = append(report.Jobs, entry)

		if !batchJSON && !quiet {
			fmt.Fprintf(out, "%s -> %s (quality %s)\n", input, jr.Job.To,
				qualityColor(entry.QualityScore).Sprintf("%d", entry.QualityScore))
			for _, w := range entry.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "  warning: %s\n", w)
			}
		}
	}

	slog.Info("batch complete", "jobs", len(results),
		"succeeded", report.Succeeded, "failed", report.Failed)

	if batchJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	}

	if report.Failed > 0 {
		return errors.NewExitError(
			errors.Newf("%d of %d jobs failed", report.Failed, len(results)),
			errors.ExitUser)
	}
	return nil
}

// writeJobResult re-imports the job's raw bytes to get the package
// identity for the target filename, then writes the content.
func writeJobResult(engine *convert.Engine, jr convert.JobResult) (string, error) {
	pkg, err := engine.Import(jr.Job.Raw, jr.Job.From, jr.Job.Source)
	if err != nil {
		return "", err
	}
	filename, err := engine.Filename(pkg, jr.Job.To)
	if err != nil {
		return "", err
	}
	dest := outputPath(jr.Job.To, filename, batchOut)
	if err := paths.EnsureDir(filepath.Dir(dest)); err != nil {
		return "", err
	}
	if err := fileutil.AtomicWriteFile(dest, []byte(jr.Result.Content), 0644); err != nil {
		return "", err
	}
	return dest, nil
}
