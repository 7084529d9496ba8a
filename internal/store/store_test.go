package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "state.json"))
}

func TestStore_SetGet(t *testing.T) {
	s := newTestStore(t)

	type payload struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	in := payload{Name: "Basmati Rice", Price: 120.5}
	require.NoError(t, s.Set("item", in))

	var out payload
	require.NoError(t, s.Get("item", &out))
	assert.Equal(t, in, out)
}

func TestStore_GetMissingKey(t *testing.T) {
	s := newTestStore(t)

	var out string
	err := s.Get("nope", &out)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("token", "abc"))
	require.NoError(t, s.Delete("token"))

	var out string
	assert.ErrorIs(t, s.Get("token", &out), ErrKeyNotFound)

	// deleting again is a no-op
	assert.NoError(t, s.Delete("token"))
}

func TestStore_OverwriteIsWholesale(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("items", []string{"a", "b"}))
	require.NoError(t, s.Set("items", []string{"c"}))

	var out []string
	require.NoError(t, s.Get("items", &out))
	assert.Equal(t, []string{"c"}, out)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first := New(path)
	require.NoError(t, first.Set("token", "abc"))

	second := New(path)
	var out string
	require.NoError(t, second.Get("token", &out))
	assert.Equal(t, "abc", out)
}
