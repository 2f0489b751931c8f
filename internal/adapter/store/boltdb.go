package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.etcd.io/bbolt"

	"designkb/internal/domain"
)

var bucketRecommendations = []byte("recommendations")

// BoltStore persists generated recommendations keyed by project slug.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketRecommendations); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketRecommendations, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Put(project string, rec domain.Recommendation) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRecommendations).Put([]byte(Slug(project)), data)
	})
}

func (s *BoltStore) Get(project string) (domain.Recommendation, error) {
	var rec domain.Recommendation
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRecommendations).Get([]byte(Slug(project)))
		if data == nil {
			return fmt.Errorf("%w: no saved recommendation for %q", domain.ErrMissingDataset, project)
		}
		return json.Unmarshal(data, &rec)
	})
	if err != nil {
		return domain.Recommendation{}, err
	}
	return rec, nil
}

func (s *BoltStore) List() ([]string, error) {
	var projects []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRecommendations).ForEach(func(k, _ []byte) error {
			projects = append(projects, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Slug lowercases a project name and replaces spaces for use as a stable
// store key.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
