package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/DrSkyle/qstr/pkg/tui"
)

var browseFrom string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and filter the table interactively",
	Example: `  qstr browse --from nightly`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := openTable(cmd.Context(), browseFrom)
		if err != nil {
			return err
		}
		p := tea.NewProgram(tui.NewModel(t.Entries()),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		_, err = p.Run()
		return err
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseFrom, "from", "", "Restore this snapshot first")
}
