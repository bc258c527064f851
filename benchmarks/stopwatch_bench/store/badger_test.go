package store

import (
	"os"
	"testing"

	"github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/require"
)

func TestBadgerStore(t *testing.T) {
	for name, passphrase := range map[string][]byte{"plain": nil, "encrypted": []byte("passphrase")} {
		t.Run(name, func(t *testing.T) {
			store, err := NewTempBadgerStore(passphrase)
			require.NoError(t, err)

			require.NoError(t, store.Set([]byte("key"), []byte("value")))
			require.NoError(t, store.SetBatch([][]byte{[]byte("a"), []byte("b")}, []byte("batch")))

			value, err := store.Get([]byte("key"))
			require.NoError(t, err)
			require.Equal(t, []byte("value"), value)

			value, err = store.Get([]byte("b"))
			require.NoError(t, err)
			require.Equal(t, []byte("batch"), value)

			_, err = store.Get([]byte("missing"))
			require.ErrorIs(t, err, badger.ErrKeyNotFound)

			require.NoError(t, store.Remove())

			_, err = os.Stat(store.Dir())
			require.True(t, os.IsNotExist(err))
		})
	}
}

func TestBadgerStoreReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewBadgerStore(dir, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set([]byte("key"), []byte("value")))
	require.NoError(t, store.Close())

	store, err = NewBadgerStore(dir, nil)
	require.NoError(t, err)

	defer func() { require.NoError(t, store.Close()) }()

	value, err := store.Get([]byte("key"))
	require.NoError(t, err)
	require.Equal(t, []byte("value"), value)
}
