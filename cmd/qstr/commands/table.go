package commands

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/DrSkyle/qstr/pkg/defs"
	"github.com/DrSkyle/qstr/pkg/qstrdefs"
	"github.com/DrSkyle/qstr/pkg/storage"
	"github.com/DrSkyle/qstr/pkg/sys/intern"
	"github.com/DrSkyle/qstr/pkg/telemetry"
)

// loadStatics returns the configured static set.
func loadStatics() ([]string, error) {
	if cfg.Defs == "" {
		return qstrdefs.Statics, nil
	}
	d, err := defs.Load(cfg.Defs)
	if err != nil {
		return nil, err
	}
	return d.Strings, nil
}

// openTable builds a table from the configured statics and, when from is
// set, restores the named snapshot into it.
func openTable(ctx context.Context, from string) (*intern.Table, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "qstr.open_table")
	defer span.End()

	statics, err := loadStatics()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load statics")
		return nil, err
	}

	t, err := intern.New(statics, cfg.Table.Options(logger)...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "new table")
		return nil, err
	}
	span.SetAttributes(attribute.Int("qstr.statics", len(statics)))

	if from != "" {
		if err := withStore(ctx, func(ctx context.Context, store storage.BlobStore) error {
			return storage.LoadSnapshot(ctx, store, from, t)
		}); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "load snapshot")
			return nil, fmt.Errorf("loading snapshot %s: %w", from, err)
		}
		logger.Debug("snapshot restored", "name", from, "strings", t.Count())
	}
	return t, nil
}

func withStore(ctx context.Context, fn func(context.Context, storage.BlobStore) error) error {
	ctx, span := telemetry.Tracer().Start(ctx, "qstr.store")
	defer span.End()
	span.SetAttributes(attribute.String("qstr.store", cfg.Store))

	store, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := fn(ctx, store); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
