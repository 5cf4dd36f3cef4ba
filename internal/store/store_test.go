package store

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "state.json"))
}

func TestGetMissingCollectionIsEmpty(t *testing.T) {
	s := newTestStore(t)
	items, err := s.Get("demo", "notes")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty collection, got %+v", items)
	}
}

func TestAppendAndGet(t *testing.T) {
	s := newTestStore(t)
	if err := s.Append("demo", "notes", Item{"id": "n1", "content": "first"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append("demo", "notes", Item{"id": "n2", "content": "second"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append("other", "notes", Item{"id": "n3"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	items, err := s.Get("demo", "notes")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0]["id"] != "n1" || items[1]["id"] != "n2" {
		t.Fatalf("unexpected ordering %+v", items)
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	if err := s.Append("demo", "notes", Item{"id": "n1"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	removed, err := s.Remove("demo", "notes", "n1")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !removed {
		t.Fatal("expected removal")
	}

	removed, err = s.Remove("demo", "notes", "n1")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed {
		t.Fatal("expected no-op on second removal")
	}

	items, err := s.Get("demo", "notes")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty collection, got %+v", items)
	}
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	if err := s.Append("demo", "tasks", Item{"id": "t1", "enabled": true}); err != nil {
		t.Fatalf("append: %v", err)
	}

	item, found, err := s.Update("demo", "tasks", "t1", func(item Item) {
		item["enabled"] = false
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !found {
		t.Fatal("expected item to be found")
	}
	if enabled, _ := item["enabled"].(bool); enabled {
		t.Fatalf("expected disabled item, got %+v", item)
	}

	// The change is persisted.
	items, err := s.Get("demo", "tasks")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if enabled, _ := items[0]["enabled"].(bool); enabled {
		t.Fatalf("expected persisted disabled item, got %+v", items[0])
	}

	_, found, err = s.Update("demo", "tasks", "ghost", func(Item) {})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if found {
		t.Fatal("expected missing item")
	}
}

func TestCorruptFileYieldsEmptyState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := New(path)
	items, err := s.Get("demo", "notes")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty collection, got %+v", items)
	}

	// The store stays writable after encountering the bad file.
	if err := s.Append("demo", "notes", Item{"id": "n1"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	items, err = s.Get("demo", "notes")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestStatePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := New(path).Append("demo", "snippets", Item{"id": "s1", "title": "x"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	items, err := New(path).Get("demo", "snippets")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 1 || items[0]["title"] != "x" {
		t.Fatalf("unexpected items %+v", items)
	}
}
