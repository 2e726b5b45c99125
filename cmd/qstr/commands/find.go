package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var findFrom string

var findCmd = &cobra.Command{
	Use:   "find STRING...",
	Short: "Look up handles without interning",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := openTable(cmd.Context(), findFrom)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		missing := 0
		for _, s := range args {
			h := t.FindString(s)
			if !h.IsValid() {
				missing++
			}
			fmt.Fprintf(out, "%d\t%s\n", h, strconv.Quote(s))
		}
		if missing > 0 {
			return fmt.Errorf("%d of %d strings not found", missing, len(args))
		}
		return nil
	},
}

func init() {
	findCmd.Flags().StringVar(&findFrom, "from", "", "Restore this snapshot first")
}
