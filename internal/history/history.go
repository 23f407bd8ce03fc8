// Package history keeps benchmark sessions in a bbolt file so runs can be
// compared over time.
package history

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"PmergeMe/internal/bench"
)

var (
	ErrNotFound = errors.New("session not found")

	bucketName = []byte("sessions")
)

type Store struct {
	db *bbolt.DB
}

// Open opens or creates the history file at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open history %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func key(id uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, id)
	return k
}

// Put assigns the next id to session and stores it.
func (s *Store) Put(session *bench.Session) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		id, err := b.NextSequence()
		if err != nil {
			return err
		}
		session.ID = id
		v, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to encode session: %w", err)
		}
		return b.Put(key(id), v)
	})
}

func (s *Store) Get(id uint64) (*bench.Session, error) {
	var session bench.Session
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get(key(id))
		if v == nil {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return json.Unmarshal(v, &session)
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// List returns up to limit sessions, newest first. limit <= 0 returns all.
func (s *Store) List(limit int) ([]*bench.Session, error) {
	var sessions []*bench.Session
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketName).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(sessions) == limit {
				break
			}
			var session bench.Session
			if err := json.Unmarshal(v, &session); err != nil {
				return fmt.Errorf("failed to decode session %d: %w", binary.BigEndian.Uint64(k), err)
			}
			sessions = append(sessions, &session)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
