package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rulebridge/rulebridge/internal/convert"
	"github.com/rulebridge/rulebridge/internal/taxonomy"
)

var formatsJSON bool

func init() {
	formatsCmd.Flags().BoolVar(&formatsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported dialects",
	Long: `List the dialects rulebridge can convert between, along with the
package subtypes each one can classify.`,
	RunE: runFormats,
}

// formatInfo is the JSON output structure for one dialect.
type formatInfo struct {
	Name     string   `json:"name"`
	Subtypes []string `json:"subtypes"`
}

func runFormats(cmd *cobra.Command, _ []string) error {
	engine := convert.NewEngine()
	out := cmd.OutOrStdout()

	if formatsJSON {
		var infos []formatInfo
		for _, f := range engine.Formats() {
			info := formatInfo{Name: string(f)}
			for _, s := range taxonomy.Subtypes(f) {
				info.Subtypes = append(info.Subtypes, string(s))
			}
			infos = append(infos, info)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", color.New(color.Bold).Sprint("DIALECT"),
		color.New(color.Bold).Sprint("SUBTYPES"))
	for _, f := range engine.Formats() {
		subtypes := make([]string, 0, 4)
		for _, s := range taxonomy.Subtypes(f) {
			subtypes = append(subtypes, string(s))
		}
		fmt.Fprintf(w, "%s\t%s\n", f, strings.Join(subtypes, ", "))
	}
	return w.Flush()
}
