package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/DrSkyle/qstr/pkg/storage"
	"github.com/DrSkyle/qstr/pkg/sys/intern"
)

// maxLineBytes bounds one line of an --file input.
const maxLineBytes = 64 << 20

var (
	internFrom string
	internSave string
	internFile string
)

var internCmd = &cobra.Command{
	Use:   "intern [STRING...]",
	Short: "Intern strings and print their handles",
	Example: `  qstr intern foo bar foo
  qstr intern --file words.txt --save words`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		t, err := openTable(ctx, internFrom)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, s := range args {
			h, err := t.InternString(s)
			if err != nil {
				return fmt.Errorf("interning %q: %w", s, err)
			}
			fmt.Fprintf(out, "%d\t%s\n", h, strconv.Quote(s))
		}
		if internFile != "" {
			if err := internLines(t, internFile, cmd.InOrStdin(), out); err != nil {
				return err
			}
		}

		if internSave != "" {
			return saveSnapshot(ctx, t, internSave)
		}
		return nil
	},
}

func init() {
	internCmd.Flags().StringVar(&internFrom, "from", "", "Restore this snapshot first")
	internCmd.Flags().StringVar(&internSave, "save", "", "Save the table as this snapshot afterwards")
	internCmd.Flags().StringVar(&internFile, "file", "", "Intern each line of this file (- for stdin)")
}

// internLines interns every line of path through the builder, so a line is
// copied once into the table.
func internLines(t *intern.Table, path string, stdin io.Reader, out io.Writer) error {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := sc.Bytes()
		b := t.BeginBuild(len(line))
		if _, err := b.Write(line); err != nil {
			b.Discard()
			return err
		}
		h, err := t.EndBuild(b)
		if err != nil {
			return fmt.Errorf("interning %q: %w", line, err)
		}
		fmt.Fprintf(out, "%d\t%s\n", h, strconv.Quote(t.Str(h)))
	}
	return sc.Err()
}

func saveSnapshot(ctx context.Context, t *intern.Table, name string) error {
	err := withStore(ctx, func(ctx context.Context, store storage.BlobStore) error {
		return storage.SaveSnapshot(ctx, store, name, t)
	})
	if err != nil {
		return fmt.Errorf("saving snapshot %s: %w", name, err)
	}
	logger.Info("snapshot saved", "name", name, "store", cfg.Store, "strings", t.Count()-t.StaticCount())
	return nil
}
