package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/inovacc/feedr/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketState  = "state"  // key: "record" -> state record
	boltBucketEvents = "events" // key: sequence (big endian) -> FeedEvent JSON

	boltKeyRecord = "record"
)

// BoltStore keeps the state record and the feed history in a BoltDB file.
type BoltStore struct {
	storage *bbolt.DB
}

// NewBoltStore opens or creates the Bolt database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketState)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketEvents)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &BoltStore{storage: instance}, nil
}

// Close closes the database.
func (b *BoltStore) Close() error {
	return b.storage.Close()
}

func (b *BoltStore) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *BoltStore) LoadState() (State, error) {
	var record string

	err := b.storage.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucketState)).Get([]byte(boltKeyRecord))
		if data == nil {
			return ErrNoState
		}

		record = string(data)

		return nil
	})
	if err != nil {
		return State{}, err
	}

	return DecodeRecord(record)
}

func (b *BoltStore) SaveState(st State) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketState)).Put([]byte(boltKeyRecord), []byte(EncodeRecord(st)))
	})
}

func (b *BoltStore) AppendEvent(ev model.FeedEvent) error {
	data, err := json.Marshal(&ev)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketEvents))

		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		return bucket.Put(key, data)
	})
}

// ListEvents returns up to limit feeds, newest first.
func (b *BoltStore) ListEvents(limit int) ([]model.FeedEvent, error) {
	var events []model.FeedEvent

	err := b.storage.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(boltBucketEvents)).Cursor()

		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(events) >= limit {
				break
			}

			var ev model.FeedEvent
			if err := json.Unmarshal(v, &ev); err != nil {
				return fmt.Errorf("decoding event %x: %w", k, err)
			}

			events = append(events, ev)
		}

		return nil
	})

	return events, err
}
