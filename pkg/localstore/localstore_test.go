package localstore

import (
	"testing"

	"alpharoot/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	return store
}

func TestStore_SetGetDelete(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, store.Set("key", []byte(`{"a":1}`)))
	raw, err := store.Get("key")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(raw))

	require.NoError(t, store.Delete("key"))
	_, err = store.Get("key")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting an absent key is fine.
	assert.NoError(t, store.Delete("key"))
}

func TestStore_SetReplaces(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("key", []byte(`"first"`)))
	require.NoError(t, store.Set("key", []byte(`"second"`)))

	raw, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, `"second"`, string(raw))
}

func TestStore_JSONRoundTrip(t *testing.T) {
	store := openTestStore(t)

	type snapshot struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}

	in := snapshot{ID: 1, Email: "test@example.com"}
	require.NoError(t, store.SetJSON("user", in))

	var out snapshot
	require.NoError(t, store.GetJSON("user", &out))
	assert.Equal(t, in, out)
}
