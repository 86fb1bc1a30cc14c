package weights

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore backs the rule-weight table with an embedded badger KV store,
// grounding the larger-scale case spec §6 alludes to: a rule set trained
// against a ranking corpus producing a weight table too large to
// conveniently hand-edit as JSON. Shape (open/get/set/close) is lifted
// directly from the teacher's datalog/storage/badger_store.go.
type BadgerStore struct {
	db *badger.DB
}

// OpenStore opens (creating if absent) a badger-backed weight store at dir.
func OpenStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening weight store at %q: %w", dir, err)
	}
	return &BadgerStore{db: db}, nil
}

// Weight returns the stored weight for ruleID, or 1.0 if absent.
func (s *BadgerStore) Weight(ruleID string) float64 {
	var w float64 = 1.0
	_ = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(ruleID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) == 8 {
				w = math.Float64frombits(binary.BigEndian.Uint64(val))
			}
			return nil
		})
	})
	return w
}

// Set persists a weight for ruleID.
func (s *BadgerStore) Set(ruleID string, weight float64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(weight))
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(ruleID), buf)
	})
}

// Close releases the underlying badger database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
