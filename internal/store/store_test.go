package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBackends(t *testing.T) map[string]Store {
	t.Helper()

	badgerStore, err := NewBadgerStore("")
	require.NoError(t, err)
	t.Cleanup(func() { badgerStore.Close(context.Background()) })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"badger": badgerStore,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, s := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, found, err := s.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, s.Set(ctx, KeyLikedEvents, []byte(`["1","2"]`)))
			raw, found, err := s.Get(ctx, KeyLikedEvents)
			require.NoError(t, err)
			require.True(t, found)
			assert.JSONEq(t, `["1","2"]`, string(raw))

			// Set replaces the whole value.
			require.NoError(t, s.Set(ctx, KeyLikedEvents, []byte(`["3"]`)))
			raw, _, err = s.Get(ctx, KeyLikedEvents)
			require.NoError(t, err)
			assert.JSONEq(t, `["3"]`, string(raw))
		})
	}
}

func TestGetIDListMissingKey(t *testing.T) {
	ids, err := GetIDList(context.Background(), NewMemoryStore(), KeyVotedIssues)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestJSONHelpers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, s, KeyRegisteredEvents, []string{"2", "1"}))

	var ids []string
	found, err := GetJSON(ctx, s, KeyRegisteredEvents, &ids)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"2", "1"}, ids)

	found, err = GetJSON(ctx, s, "never-written", &ids)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSONMalformedValue(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyVotedEvents, []byte(`not json`)))
	var ids []string
	_, err := GetJSON(ctx, s, KeyVotedEvents, &ids)
	assert.Error(t, err)
}

func TestMemoryStoreFailReads(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	s.FailReads = true
	_, _, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestKindKeys(t *testing.T) {
	assert.Equal(t, KeyUserEvents, UserKey("event"))
	assert.Equal(t, KeyUserIssues, UserKey("issue"))
	assert.Equal(t, KeyLikedIssues, LikedKey("issue"))
	assert.Equal(t, KeyVotedEvents, VotedKey("event"))
	assert.Equal(t, KeyDraftIssues, DraftKey("issue"))
}
