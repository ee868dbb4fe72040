package lazy

import (
	"fmt"
	"reflect"
	"time"
	"weak"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Snapshot is a point-in-time capture of every live cell registered with a
// Graph. Entries hold shared handles to the captured value objects, not
// copies: taking a snapshot is O(1) per cell, and because every mutation
// replaces a cell's value object instead of mutating it, a later Set can
// never retroactively alter a captured value.
//
// Snapshots are in-memory and process-local; they reference the original
// cells weakly and carry no durable format.
type Snapshot struct {
	id      string
	takenAt time.Time
	entries []snapshotEntry
}

type snapshotEntry struct {
	cell  weak.Pointer[core]
	value any
}

func newSnapshot() *Snapshot {
	return &Snapshot{
		id:      uuid.NewString(),
		takenAt: time.Now(),
	}
}

// ID returns the snapshot's identity.
func (s *Snapshot) ID() string {
	return s.id
}

// TakenAt returns when the snapshot was captured.
func (s *Snapshot) TakenAt() time.Time {
	return s.takenAt
}

// Len returns the number of captured pairs still referencing a live cell.
func (s *Snapshot) Len() int {
	n := 0
	for _, e := range s.entries {
		if e.cell.Value() != nil {
			n++
		}
	}
	return n
}

// Fingerprint hashes the captured payload values. Two snapshots over the
// same cells with equal values produce the same fingerprint, which makes
// "did anything change between these two checkpoints" a cheap comparison.
func (s *Snapshot) Fingerprint() uint64 {
	d := xxhash.New()
	for _, e := range s.entries {
		fmt.Fprintf(d, "%v\n", payloadValue(e.value))
	}
	return d.Sum64()
}

// payloadValue dereferences an opaque payload handle for hashing. Absent
// slots hash as a marker instead of a pointer address.
func payloadValue(v any) any {
	if v == nil {
		return "<absent>"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "<absent>"
		}
		return rv.Elem().Interface()
	}
	return v
}
