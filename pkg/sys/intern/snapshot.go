package intern

import (
	"encoding/json"
	"fmt"
)

// SnapshotVersion is the current snapshot format.
const SnapshotVersion = 1

// Snapshot records the dynamic strings of a table in handle order. Restoring
// it into a fresh table built from the same statics reproduces every handle.
type Snapshot struct {
	Version     int    `json:"version"`
	Statics     uint32 `json:"statics"`
	Fingerprint uint64 `json:"fingerprint"`
	// Strings holds dynamic strings; Strings[i] has handle Statics+i+1.
	Strings [][]byte `json:"strings"`
}

// Snapshot captures the dynamic strings of t.
func (t *Table) Snapshot() Snapshot {
	s := Snapshot{
		Version:     SnapshotVersion,
		Statics:     t.nStatic,
		Fingerprint: Fingerprint(t.statics),
	}
	for h, b := range t.All() {
		if t.IsStatic(h) {
			continue
		}
		s.Strings = append(s.Strings, append([]byte(nil), b...))
	}
	return s
}

// Restore interns the snapshot's strings into t and verifies that each gets
// the handle it had when the snapshot was taken. t must hold only its static
// set. A rejected snapshot leaves t unchanged.
func (t *Table) Restore(s Snapshot) error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("%w: version %d, want %d", ErrSnapshotMismatch, s.Version, SnapshotVersion)
	}
	if s.Statics != t.nStatic || s.Fingerprint != Fingerprint(t.statics) {
		return fmt.Errorf("%w: static set differs (%d strings, fingerprint %016x)",
			ErrSnapshotMismatch, s.Statics, s.Fingerprint)
	}
	if n := t.Count(); n != t.nStatic {
		return fmt.Errorf("%w: table already holds %d dynamic strings", ErrSnapshotMismatch, n-t.nStatic)
	}

	seen := make(map[string]struct{}, len(s.Strings))
	total := 0
	for i, b := range s.Strings {
		if _, dup := seen[string(b)]; dup || t.Find(b) != Null {
			return fmt.Errorf("%w: %q at handle %d is not unique", ErrSnapshotMismatch, b, s.Statics+uint32(i)+1)
		}
		seen[string(b)] = struct{}{}
		total += len(b)
	}
	if err := t.reserve(total); err != nil {
		return fmt.Errorf("restoring snapshot: %w", err)
	}

	for i, b := range s.Strings {
		want := Handle(s.Statics + uint32(i) + 1)
		got, err := t.Intern(b)
		if err != nil {
			return fmt.Errorf("restoring handle %d: %w", want, err)
		}
		if got != want {
			return fmt.Errorf("%w: %q restored as handle %d, want %d", ErrSnapshotMismatch, b, got, want)
		}
	}
	return nil
}

// MarshalSnapshot encodes s as JSON.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// UnmarshalSnapshot decodes a snapshot produced by MarshalSnapshot.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return s, nil
}
