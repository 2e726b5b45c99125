package commands

import (
	"github.com/spf13/cobra"

	"github.com/DrSkyle/qstr/pkg/report"
)

var (
	dumpFrom   string
	dumpFormat string
	dumpWhere  string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "List every interned string",
	Example: `  qstr dump
  qstr dump --where 'str.startsWith("__") && static' --format csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := report.ParseFormat(dumpFormat)
		if err != nil {
			return err
		}
		var filter *report.Filter
		if dumpWhere != "" {
			if filter, err = report.CompileFilter(dumpWhere); err != nil {
				return err
			}
		}

		t, err := openTable(cmd.Context(), dumpFrom)
		if err != nil {
			return err
		}
		entries, err := filter.Apply(t.Entries())
		if err != nil {
			return err
		}
		return report.WriteEntries(cmd.OutOrStdout(), entries, f)
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFrom, "from", "", "Restore this snapshot first")
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "Output format: text, json, csv, yaml")
	dumpCmd.Flags().StringVarP(&dumpWhere, "where", "w", "", "CEL filter over handle, len, hash, static, str")
}
