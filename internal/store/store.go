// Package store provides the durable string-keyed JSON store the
// engine persists to. Backends share one contract: Get returns the
// full value or reports absence, Set replaces the full value. There
// are no partial results and no per-key locking; within one process
// each key has a single writing actor.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Known keys. Values are JSON-encoded arrays: content keys hold arrays
// of records, interaction keys hold ordered arrays of ids with the
// most recent id first.
const (
	KeyUserEvents = "events:user"
	KeyUserIssues = "issues:user"

	KeyLikedEvents = "liked:events"
	KeyLikedIssues = "liked:issues"
	KeyVotedEvents = "voted:events"
	KeyVotedIssues = "voted:issues"

	KeyRegisteredEvents = "registered:events"
	KeyAttendedEvents   = "attended:events"

	KeyDraftEvents = "drafts:events"
	KeyDraftIssues = "drafts:issues"
)

// ErrUnavailable reports that the backing store cannot be reached.
// Callers degrade (baseline-only reads, best-effort writes) instead of
// failing the whole operation.
var ErrUnavailable = errors.New("store unavailable")

// Store is the persistence contract used by all engine components.
type Store interface {
	// Get returns the value stored at key. found is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set replaces the value stored at key.
	Set(ctx context.Context, key string, value []byte) error
	Close(ctx context.Context) error
}

// GetJSON reads key and unmarshals it into out. A missing key leaves
// out untouched and returns found=false with no error.
func GetJSON(ctx context.Context, s Store, key string, out interface{}) (bool, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// SetJSON marshals v and stores it at key.
func SetJSON(ctx context.Context, s Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}

// GetIDList reads an ordered id list, returning an empty list for a
// missing key.
func GetIDList(ctx context.Context, s Store, key string) ([]string, error) {
	var ids []string
	if _, err := GetJSON(ctx, s, key, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
