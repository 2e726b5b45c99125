package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/DrSkyle/qstr/pkg/telemetry"
)

var (
	metricsFrom string
	metricsAddr string
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Serve table statistics for Prometheus",
	Example: `  qstr metrics --from nightly --addr :9464`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := openTable(cmd.Context(), metricsFrom)
		if err != nil {
			return err
		}
		addr := metricsAddr
		if addr == "" {
			addr = cfg.MetricsAddr
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			telemetry.NewTableCollector(t, "default"),
			collectors.NewGoCollector(),
		)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

		srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() { errc <- srv.ListenAndServe() }()
		logger.Info("serving metrics", "addr", addr)

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	metricsCmd.Flags().StringVar(&metricsFrom, "from", "", "Restore this snapshot first")
	metricsCmd.Flags().StringVar(&metricsAddr, "addr", "", "Listen address (default from config, :9464)")
}
