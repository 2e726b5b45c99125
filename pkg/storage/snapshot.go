package storage

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/DrSkyle/qstr/pkg/sys/intern"
)

// SnapshotExt is appended to snapshot names to form keys.
const SnapshotExt = ".qsnap.json"

// SnapshotKey returns the key a named snapshot is stored under.
func SnapshotKey(name string) string {
	return path.Join("snapshots", name+SnapshotExt)
}

// SaveSnapshot stores the dynamic strings of t under name.
func SaveSnapshot(ctx context.Context, store BlobStore, name string, t *intern.Table) error {
	data, err := intern.MarshalSnapshot(t.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return store.Put(ctx, SnapshotKey(name), data)
}

// LoadSnapshot restores snapshot name into t, which must hold only the
// matching static set.
func LoadSnapshot(ctx context.Context, store BlobStore, name string, t *intern.Table) error {
	data, err := store.Get(ctx, SnapshotKey(name))
	if err != nil {
		return err
	}
	snap, err := intern.UnmarshalSnapshot(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return t.Restore(snap)
}

// ListSnapshots returns the stored snapshot names, sorted.
func ListSnapshots(ctx context.Context, store BlobStore) ([]string, error) {
	keys, err := store.List(ctx, "snapshots/")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, k := range keys {
		if name, ok := strings.CutSuffix(path.Base(k), SnapshotExt); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}
