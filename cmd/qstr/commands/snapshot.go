package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DrSkyle/qstr/pkg/report"
	"github.com/DrSkyle/qstr/pkg/storage"
)

var snapshotFormat string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save, load and list table snapshots",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save NAME [STRING...]",
	Short: "Intern strings into a fresh table and save it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		t, err := openTable(ctx, "")
		if err != nil {
			return err
		}
		for _, s := range args[1:] {
			if _, err := t.InternString(s); err != nil {
				return fmt.Errorf("interning %q: %w", s, err)
			}
		}
		return saveSnapshot(ctx, t, args[0])
	},
}

var snapshotLoadCmd = &cobra.Command{
	Use:   "load NAME",
	Short: "Restore a snapshot and dump its dynamic strings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := report.ParseFormat(snapshotFormat)
		if err != nil {
			return err
		}
		t, err := openTable(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		entries := t.Entries()[t.StaticCount():]
		return report.WriteEntries(cmd.OutOrStdout(), entries, f)
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(ctx context.Context, store storage.BlobStore) error {
			names, err := storage.ListSnapshots(ctx, store)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		})
	},
}

func init() {
	snapshotLoadCmd.Flags().StringVarP(&snapshotFormat, "format", "f", "text", "Output format: text, json, csv, yaml")
	snapshotCmd.AddCommand(snapshotSaveCmd, snapshotLoadCmd, snapshotListCmd)
}
