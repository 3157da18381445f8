package rules

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/mobile-audit/internal/detector"
	catalog "github.com/scan-io-git/mobile-audit/internal/rules"
)

// RuleInfo is the listing entry for one catalog rule.
type RuleInfo struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Requires    string `json:"requires"`
	Description string `json:"description"`
}

var listJSON bool

// RulesCmd represents the rules command.
var RulesCmd = &cobra.Command{
	Use:                   "rules [--json]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Short:                 "List the audit rule catalog in evaluation order",
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		infos := ListRules()
		if listJSON {
			return printRulesJSON(cmd.OutOrStdout(), infos)
		}
		return printRulesTable(cmd.OutOrStdout(), infos)
	},
}

// ListRules describes every catalog rule in evaluation order.
func ListRules() []RuleInfo {
	all := catalog.All()
	infos := make([]RuleInfo, 0, len(all))
	for _, r := range all {
		infos = append(infos, RuleInfo{
			ID:          r.ID,
			Category:    r.Category,
			Requires:    gate(r.Requires),
			Description: r.Description,
		})
	}
	return infos
}

func gate(flags detector.Flags) string {
	if flags == 0 {
		return "any"
	}
	return flags.String()
}

func printRulesTable(w io.Writer, infos []RuleInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tREQUIRES\tDESCRIPTION")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.ID, info.Category, info.Requires, info.Description)
	}
	return tw.Flush()
}

func printRulesJSON(w io.Writer, infos []RuleInfo) error {
	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func init() {
	RulesCmd.Flags().BoolVar(&listJSON, "json", false, "Print the catalog as JSON.")
}
