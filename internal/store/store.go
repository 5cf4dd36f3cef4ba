// Package store implements the keyed-collection state store backing the
// notes, snippets, and recurring-tasks features: one JSON data file holding
// per-repository collections, read-modify-written under a single lock.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Item is one element of a collection. Every item carries an "id" field.
type Item map[string]any

type state map[string]map[string][]Item

// Store is a file-backed keyed-collection store. All operations are safe
// for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
}

// New returns a store backed by the JSON file at path. The file is
// created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Get returns the collection stored under (repo, key). A missing
// collection is an empty one.
func (s *Store) Get(repo, key string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load()
	if err != nil {
		return nil, err
	}
	items := st[repo][key]
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

// Append adds item to the collection under (repo, key).
func (s *Store) Append(repo, key string, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load()
	if err != nil {
		return err
	}
	if st[repo] == nil {
		st[repo] = map[string][]Item{}
	}
	st[repo][key] = append(st[repo][key], item)
	return s.save(st)
}

// Update applies fn to the item with the given id under (repo, key) and
// persists the result, reporting whether the item was found. The updated
// item is returned.
func (s *Store) Update(repo, key, itemID string, fn func(Item)) (Item, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load()
	if err != nil {
		return nil, false, err
	}
	for _, item := range st[repo][key] {
		if id, _ := item["id"].(string); id != itemID {
			continue
		}
		fn(item)
		if err := s.save(st); err != nil {
			return nil, false, err
		}
		return item, true, nil
	}
	return nil, false, nil
}

// Remove deletes the item with the given id from the collection under
// (repo, key), reporting whether anything was removed.
func (s *Store) Remove(repo, key, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load()
	if err != nil {
		return false, err
	}
	items := st[repo][key]
	kept := items[:0]
	for _, item := range items {
		if id, _ := item["id"].(string); id == itemID {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == len(items) {
		return false, nil
	}
	if st[repo] == nil {
		st[repo] = map[string][]Item{}
	}
	st[repo][key] = kept
	if err := s.save(st); err != nil {
		return false, err
	}
	return true, nil
}

// load reads the state file. A missing or corrupt file yields an empty
// state so a bad write can never wedge the store.
func (s *Store) load() (state, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state{}, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return state{}, nil
	}
	if st == nil {
		st = state{}
	}
	return st, nil
}

// save writes the state atomically: marshal to a temp file in the same
// directory, then rename over the data file.
func (s *Store) save(st state) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
