package commands

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/DrSkyle/qstr/pkg/defs"
)

var (
	genOut     string
	genPackage string
)

var genCmd = &cobra.Command{
	Use:   "gen DEFS",
	Short: "Generate Go handle constants from a definitions file",
	Example: `  qstr gen qstrdefs.hcl -o zqstrdefs.go
  qstr gen strings.yaml --package mystrs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := defs.Load(args[0])
		if err != nil {
			return err
		}
		if genPackage != "" {
			d.Package = genPackage
		}

		var buf bytes.Buffer
		if err := defs.Generate(&buf, d); err != nil {
			return err
		}
		logger.Debug("generated definitions", "source", d.Source, "strings", len(d.Strings), "fingerprint", d.Fingerprint())

		if genOut == "" || genOut == "-" {
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		return os.WriteFile(genOut, buf.Bytes(), 0o644)
	},
}

func init() {
	genCmd.Flags().StringVarP(&genOut, "output", "o", "", "Output file (default stdout)")
	genCmd.Flags().StringVar(&genPackage, "package", "", "Override the package name")
}
