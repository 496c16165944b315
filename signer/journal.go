package signer

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// ErrNonceIssued is returned when a voucher was already signed for a nonce.
var ErrNonceIssued = errors.New("signer: nonce already issued")

const nonceKeyPrefix = "nonce/"

// NewLevelDB opens the journal database. An empty path opens an in-memory
// database.
func NewLevelDB(path string, compactOnInit bool) (*leveldb.DB, error) {
	// if path is empty, use in memory db
	if path == "" {
		memStorage := storage.NewMemStorage()
		return leveldb.Open(memStorage, nil)
	}

	// open the database (or create)
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open level db %s: %w", path, err)
	}

	// compact the database if configured
	if compactOnInit {
		log.Info().Str("path", path).Msg("compacting leveldb...")
		err = db.CompactRange(util.Range{})
		if err != nil {
			return nil, fmt.Errorf("failed to compact level db %s: %w", path, err)
		}
		log.Info().Str("path", path).Msg("leveldb compacted")
	}

	return db, nil
}

// Journal records every nonce the signer has issued a voucher for.
type Journal struct {
	db *leveldb.DB
}

func NewJournal(db *leveldb.DB) *Journal {
	return &Journal{db: db}
}

func nonceKey(nonce string) []byte {
	return []byte(nonceKeyPrefix + nonce)
}

// Has reports whether nonce was issued.
func (j *Journal) Has(nonce string) (bool, error) {
	return j.db.Has(nonceKey(nonce), nil)
}

// Record marks nonce as issued, storing the voucher payload alongside.
// It fails with ErrNonceIssued if the nonce is already present.
func (j *Journal) Record(nonce string, payload []byte) error {
	tr, err := j.db.OpenTransaction()
	if err != nil {
		return fmt.Errorf("failed to open journal transaction: %w", err)
	}
	key := nonceKey(nonce)
	exists, err := tr.Has(key, nil)
	if err != nil {
		tr.Discard()
		return err
	}
	if exists {
		tr.Discard()
		return fmt.Errorf("%w: %s", ErrNonceIssued, nonce)
	}
	if err := tr.Put(key, payload, nil); err != nil {
		tr.Discard()
		return err
	}
	return tr.Commit()
}

// Get returns the payload recorded for nonce.
func (j *Journal) Get(nonce string) ([]byte, error) {
	return j.db.Get(nonceKey(nonce), nil)
}

// Count returns the number of issued nonces.
func (j *Journal) Count() (int, error) {
	iter := j.db.NewIterator(util.BytesPrefix([]byte(nonceKeyPrefix)), nil)
	defer iter.Release()
	n := 0
	for iter.Next() {
		n++
	}
	return n, iter.Error()
}

func (j *Journal) Close() error {
	return j.db.Close()
}
