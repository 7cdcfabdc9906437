// Package store keeps loaded codon usage tables in a bolt database,
// one entry per species.
package store

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Davydov/codonusage/codon"
)

// log is the global logging variable.
var log = logging.MustGetLogger("store")

// TABLES is the bucket name for all the tables.
var TABLES = []byte("tables")

// ErrNotFound is returned when there is no table for a species.
var ErrNotFound = errors.New("no codon usage table for species")

// Store saves and restores codon usage tables.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) a store file.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return New(db), nil
}

// New creates a new Store on an open database. A Store with a nil
// database saves nothing and finds nothing.
func New(db *bolt.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save stores a table under its species, replacing the previous one.
func (s *Store) Save(t *codon.Table) error {
	data, err := t.MarshalJSON()
	if err != nil {
		log.Error("Error serializing table", err)
		return err
	}
	err = SaveData(s.db, []byte(t.Species), data)
	if err != nil {
		log.Error("Error saving table", err)
		return err
	}
	log.Debugf("Saved table for %q (%d codons)", t.Species, t.Len())
	return nil
}

// Load returns the table saved for species.
func (s *Store) Load(species string) (*codon.Table, error) {
	b, err := LoadData(s.db, []byte(species))
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, species)
	}

	t := codon.NewTable(species)
	if err := t.Read(bytes.NewReader(b)); err != nil {
		return nil, err
	}
	log.Debugf("Found table for %q (%d codons)", species, t.Len())
	return t, nil
}

// Species returns the species with a saved table, in key order.
func (s *Store) Species() ([]string, error) {
	var species []string
	if s.db == nil {
		return nil, nil
	}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(TABLES)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			species = append(species, string(k))
			return nil
		})
	})
	return species, err
}

// Delete removes the table of a species. Deleting an absent table is
// not an error.
func (s *Store) Delete(species string) error {
	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(TABLES)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(species))
	})
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(TABLES)
		if err != nil {
			return err
		}

		err = b.Put(key, data)
		return err
	})
	return err
}

// LoadData loads data from bolt database. Nil is returned if there is
// no such key.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(TABLES)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
