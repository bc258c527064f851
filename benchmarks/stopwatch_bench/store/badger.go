// Package store is a small key-value store used as the subject of the storage benchmarks.
package store

import (
	"crypto/sha256"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/sirupsen/logrus"
)

// BadgerStore owns a badger database living in its own directory.
type BadgerStore struct {
	db       *badger.DB
	dir      string
	gcExitCh chan struct{}
	wg       sync.WaitGroup
}

// NewBadgerStore opens a store in dir. If passphrase is not empty the data is encrypted at rest.
func NewBadgerStore(dir string, passphrase []byte) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(logrus.StandardLogger()).
		WithLoggingLevel(badger.ERROR)

	if len(passphrase) > 0 {
		key := sha256.Sum256(passphrase)

		opts = opts.WithEncryptionKey(key[:]).WithIndexCacheSize(128 * 1024 * 1024)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	store := &BadgerStore{
		db:       db,
		dir:      dir,
		gcExitCh: make(chan struct{}),
	}

	store.wg.Add(1)

	go store.startGCCollector()

	return store, nil
}

// NewTempBadgerStore opens a store in a new temporary directory. Use Remove to dispose of it.
func NewTempBadgerStore(passphrase []byte) (*BadgerStore, error) {
	dir, err := os.MkdirTemp("", "stopwatch-badger-")
	if err != nil {
		return nil, err
	}

	store, err := NewBadgerStore(dir, passphrase)
	if err != nil {
		return nil, errors.Join(err, os.RemoveAll(dir))
	}

	return store, nil
}

func (b *BadgerStore) startGCCollector() {
	defer b.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			{
			again:
				if err := b.db.RunValueLogGC(0.5); err == nil {
					goto again
				}
			}

		case <-b.gcExitCh:
			return
		}
	}
}

func (b *BadgerStore) Get(key []byte) ([]byte, error) {
	var data []byte

	if err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)
		if err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return data, nil
}

func (b *BadgerStore) Set(key, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// SetBatch writes all pairs in a single write batch.
func (b *BadgerStore) SetBatch(keys [][]byte, value []byte) error {
	batch := b.db.NewWriteBatch()
	defer batch.Cancel()

	for _, key := range keys {
		if err := batch.Set(key, value); err != nil {
			return err
		}
	}

	return batch.Flush()
}

func (b *BadgerStore) Dir() string {
	return b.dir
}

func (b *BadgerStore) Close() error {
	close(b.gcExitCh)
	b.wg.Wait()

	return b.db.Close()
}

// Remove closes the database and deletes its directory.
func (b *BadgerStore) Remove() error {
	return errors.Join(b.Close(), os.RemoveAll(b.dir))
}
