package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DrSkyle/qstr/pkg/report"
)

var (
	infoFrom   string
	infoFormat string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show pool and memory statistics",
	Example: `  qstr info
  qstr info --from nightly --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := report.ParseFormat(infoFormat)
		if err != nil {
			return err
		}
		t, err := openTable(cmd.Context(), infoFrom)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if err := report.WriteInfo(out, t.Info(), f); err != nil {
			return err
		}
		if stats, ok := t.IndexStats(); ok && f == report.FormatText {
			fmt.Fprintf(out, "  index: %d buckets, longest %d, empty %d\n", stats.Buckets, stats.Longest, stats.Empty)
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVar(&infoFrom, "from", "", "Restore this snapshot first")
	infoCmd.Flags().StringVarP(&infoFormat, "format", "f", "text", "Output format: text, json, csv, yaml")
}
