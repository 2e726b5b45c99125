package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/DrSkyle/qstr/pkg/config"
	"github.com/DrSkyle/qstr/pkg/telemetry"
	"github.com/DrSkyle/qstr/pkg/version"
)

var (
	cfgFile     string
	verbose     bool
	jsonLogs    bool
	traceStdout bool

	cfg      config.Config
	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
	shutdown func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "qstr",
	Short: "String interning table tools",
	Long: `qstr - interned string table toolkit

Inspect, extend and snapshot qstr tables; generate static handle sets.`,
	Version:           version.String(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if shutdown == nil {
			return nil
		}
		return shutdown(cmd.Context())
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default ~/.qstr.yaml)")
	pf.String("defs", "", "Static definitions file (.hcl or .yaml); default is the built-in set")
	pf.String("store", config.DefaultStore, "Snapshot store: directory or s3://bucket/prefix")
	pf.String("hash", config.DefaultHash, "Hash function: djb2 or xxhash")
	pf.Int("pool-size", config.DefaultTableConfig().PoolSize, "Minimum slots in a new pool")
	pf.Int("index", 0, "Hash index buckets (0 = linear scan)")
	pf.Int("find-cache", 0, "LRU find cache size (0 = off)")
	pf.Int("max-bytes", 0, "Table byte budget (0 = unlimited)")
	pf.String("otlp-endpoint", "", "OTLP/HTTP trace endpoint")
	pf.BoolVar(&traceStdout, "trace-stdout", false, "Print spans to stderr")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	pf.BoolVar(&jsonLogs, "json-logs", false, "Log as JSON")
	pf.MarkHidden("trace-stdout")

	for key, flag := range map[string]string{
		"defs":                "defs",
		"store":               "store",
		"otlp_endpoint":       "otlp-endpoint",
		"table.hash":          "hash",
		"table.pool_size":     "pool-size",
		"table.index_buckets": "index",
		"table.find_cache":    "find-cache",
		"table.max_bytes":     "max-bytes",
	} {
		viper.BindPFlag(key, pf.Lookup(flag))
	}

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd)
	})

	rootCmd.AddCommand(infoCmd, dumpCmd, browseCmd, internCmd, findCmd, genCmd, snapshotCmd, metricsCmd)
}

func initConfig() {
	config.SetDefaults(viper.GetViper())
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".qstr.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("QSTR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	// A missing file is fine; defaults and flags still apply.
	viper.ReadInConfig()
}

func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if jsonLogs {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	slog.SetDefault(logger)

	var err error
	cfg, err = config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	if viper.ConfigFileUsed() != "" {
		logger.Debug("config loaded", "file", viper.ConfigFileUsed())
	}

	shutdown, err = telemetry.Init(cmd.Context(), telemetry.Config{
		ServiceName:    version.AppName,
		ServiceVersion: version.String(),
		Endpoint:       cfg.OTLPEndpoint,
		Stdout:         traceStdout,
		Writer:         os.Stderr,
	})
	return err
}

func renderHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("QSTR %s", version.String())))
	if cmd.Long != "" {
		fmt.Fprintln(out, cmd.Long)
	} else {
		fmt.Fprintln(out, cmd.Short)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, titleStyle.Render("USAGE"))
	fmt.Fprintf(out, "  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintln(out, titleStyle.Render("COMMANDS"))
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() {
				fmt.Fprintf(out, "  %-12s %s\n", c.Name(), c.Short)
			}
		}
		fmt.Fprintln(out)
	}

	if cmd.Example != "" {
		fmt.Fprintln(out, titleStyle.Render("EXAMPLES"))
		fmt.Fprintln(out, cmd.Example)
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, titleStyle.Render("FLAGS"))
	visit := func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		line := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			line += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Fprintln(out, flagStyle.Render(line))
	}
	cmd.LocalFlags().VisitAll(visit)
	cmd.InheritedFlags().VisitAll(visit)
	fmt.Fprintln(out)
}
